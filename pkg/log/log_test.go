package log

import (
	"bytes"
	"context"
	"os"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure(t *testing.T) {
	t.Cleanup(func() { logrus.SetLevel(logrus.InfoLevel) })

	require.NoError(t, Configure("debug", "json"))
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logrus.StandardLogger().Formatter)

	err := Configure("verboso", "text")
	assert.Error(t, err)
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}

func TestForContext(t *testing.T) {
	var buf bytes.Buffer
	logrus.SetOutput(&buf)
	logrus.SetFormatter(&logrus.JSONFormatter{})
	t.Cleanup(func() { logrus.SetOutput(os.Stdout) })

	ctx, id := WithCorrelationID(context.Background(), "")
	require.NotEmpty(t, id)
	ctx = WithViewer(ctx, 42)

	ForContext(ctx).Info("comparação carregada")

	var entry map[string]any
	require.NoError(t, jsoniter.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, id, entry[CorrelationIDField])
	assert.Equal(t, float64(42), entry[ViewerIDField])
	assert.Equal(t, "comparação carregada", entry["msg"])
}

func TestWithCorrelationID_PreservaIDRecebido(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background(), "req-123")

	assert.Equal(t, "req-123", id)
	assert.Equal(t, "req-123", CorrelationID(ctx))
	assert.Equal(t, L, ForContext(context.Background()))
}
