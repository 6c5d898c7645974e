package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateResourceID gera o id de um recurso compartilhado no tamanho padrão do nanoid
func GenerateResourceID() (string, error) {
	return gonanoid.Generate(characters, 21)
}
