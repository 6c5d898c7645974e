package sharing

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/integrator/email"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/integrator/whatsapp"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-dashboard-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks
type SharingService interface {
	CreateResource(ctx context.Context, createdBy int, req *domain.CreateShareResourceRequest) (*domain.ShareResource, error)
	ListResources(ctx context.Context, clientID string) ([]*domain.ShareResource, error)
	DeleteResource(ctx context.Context, id string) error
	SendEmail(ctx context.Context, req *domain.EmailRequest) (*domain.SendResult, error)
	SendWhatsApp(ctx context.Context, req *domain.WhatsAppRequest) (*domain.SendResult, error)
}

type Service struct {
	resources repository.ShareResourceRepository
	mailer    email.Sender
	whatsapp  whatsapp.Client
	newID     func() (string, error)
}

func NewService(resources repository.ShareResourceRepository, mailer email.Sender, whatsappClient whatsapp.Client) *Service {
	return &Service{
		resources: resources,
		mailer:    mailer,
		whatsapp:  whatsappClient,
		newID:     utils.GenerateResourceID,
	}
}

func (s *Service) CreateResource(ctx context.Context, createdBy int, req *domain.CreateShareResourceRequest) (*domain.ShareResource, error) {
	if req == nil {
		return nil, NewSharingError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, "corpo vazio")
	}
	if err := req.Validate(); err != nil {
		return nil, NewSharingError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, err.Error())
	}

	id, err := s.newID()
	if err != nil {
		return nil, NewSharingError(ErrGenerateID, apiErrors.ErrInternalServer, "")
	}

	resource, err := s.resources.Create(ctx, &domain.ShareResource{
		ID:          id,
		ClientID:    req.ClientID,
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		URL:         req.URL,
		FilePath:    req.FilePath,
		MimeType:    req.MimeType,
		Size:        req.Size,
		CreatedBy:   createdBy,
	})
	if err != nil {
		logrus.WithError(err).WithField("client_id", req.ClientID).Error("Erro ao criar recurso compartilhado")
		return nil, NewSharingError(ErrDatabase, apiErrors.ErrDatabaseOperation, "")
	}

	return resource, nil
}

func (s *Service) ListResources(ctx context.Context, clientID string) ([]*domain.ShareResource, error) {
	if strings.TrimSpace(clientID) == "" {
		return nil, NewSharingError(ErrInvalidRequest, apiErrors.ErrMissingRequiredData, domain.ErrMissingClient.Error())
	}

	resources, err := s.resources.ListByClient(ctx, clientID)
	if err != nil {
		logrus.WithError(err).WithField("client_id", clientID).Error("Erro ao listar recursos compartilhados")
		return nil, NewSharingError(ErrDatabase, apiErrors.ErrDatabaseOperation, "")
	}

	return resources, nil
}

func (s *Service) DeleteResource(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return NewSharingError(ErrInvalidRequest, apiErrors.ErrMissingRequiredData, "id do recurso é obrigatório")
	}

	err := s.resources.Delete(ctx, id)
	if errors.Is(err, repository.ErrShareResourceNotFound) {
		return NewSharingError(ErrResourceNotFound, apiErrors.ErrResourceNotFound, id)
	}
	if err != nil {
		logrus.WithError(err).WithField("resource_id", id).Error("Erro ao remover recurso compartilhado")
		return NewSharingError(ErrDatabase, apiErrors.ErrDatabaseOperation, "")
	}

	return nil
}

// SendEmail valida o pedido, anexa os links dos recursos ao corpo e envia uma única mensagem
func (s *Service) SendEmail(ctx context.Context, req *domain.EmailRequest) (*domain.SendResult, error) {
	if req == nil {
		return nil, NewSharingError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, "corpo vazio")
	}
	if err := req.Validate(); err != nil {
		return nil, NewSharingError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, err.Error())
	}

	resources, err := s.loadResources(ctx, req.ResourceIDs)
	if err != nil {
		return nil, err
	}

	body := appendResourceLinks(req.Body, resources, req.IsHTML)

	if err := s.mailer.Send(ctx, req.Recipients, req.Subject, body, req.IsHTML); err != nil {
		logrus.WithError(err).WithField("recipients", len(req.Recipients)).Error("Erro ao enviar e-mail")
		return nil, NewSharingError(ErrSendFailed, apiErrors.ErrExternalService, err.Error())
	}

	return &domain.SendResult{
		Channel:   "email",
		Delivered: len(req.Recipients),
	}, nil
}

// SendWhatsApp envia o texto primeiro e depois uma mensagem de mídia por arquivo
func (s *Service) SendWhatsApp(ctx context.Context, req *domain.WhatsAppRequest) (*domain.SendResult, error) {
	if req == nil {
		return nil, NewSharingError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, "corpo vazio")
	}
	if err := req.Validate(); err != nil {
		return nil, NewSharingError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, err.Error())
	}

	resources, err := s.loadResources(ctx, req.ResourceIDs)
	if err != nil {
		return nil, err
	}

	files := append([]domain.ResourceFile{}, req.Files...)
	for _, resource := range resources {
		files = append(files, resourceFile(resource))
	}

	result := &domain.SendResult{Channel: "whatsapp", MessageIDs: make([]string, 0, len(files)+1)}

	if strings.TrimSpace(req.Message) != "" {
		id, err := s.whatsapp.SendText(ctx, req.Phone, req.Message)
		if err != nil {
			logrus.WithError(err).Error("Erro ao enviar mensagem de texto no WhatsApp")
			return nil, NewSharingError(ErrSendFailed, apiErrors.ErrExternalService, err.Error())
		}
		result.MessageIDs = append(result.MessageIDs, id)
	}

	for _, file := range files {
		id, err := s.whatsapp.SendMedia(ctx, req.Phone, file)
		if err != nil {
			logrus.WithError(err).WithField("file", file.Name).Error("Erro ao enviar mídia no WhatsApp")
			return result, NewSharingError(ErrSendFailed, apiErrors.ErrExternalService, fmt.Sprintf("%s: %s", file.Name, err.Error()))
		}
		result.MessageIDs = append(result.MessageIDs, id)
	}

	result.Delivered = len(result.MessageIDs)

	return result, nil
}

// loadResources exige que todos os ids pedidos existam
func (s *Service) loadResources(ctx context.Context, ids []string) ([]*domain.ShareResource, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	resources, err := s.resources.ListByIDs(ctx, ids)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar recursos para envio")
		return nil, NewSharingError(ErrDatabase, apiErrors.ErrDatabaseOperation, "")
	}

	found := make(map[string]struct{}, len(resources))
	for _, resource := range resources {
		found[resource.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			return nil, NewSharingError(ErrResourceNotFound, apiErrors.ErrResourceNotFound, id)
		}
	}

	return resources, nil
}

func resourceFile(resource *domain.ShareResource) domain.ResourceFile {
	file := domain.ResourceFile{
		ID:   resource.ID,
		Name: resource.Title,
		URL:  resource.URL,
	}
	if resource.MimeType != nil {
		file.MimeType = *resource.MimeType
	} else if resource.Type == domain.ShareResourceImage {
		file.MimeType = "image/*"
	}
	if resource.Size != nil {
		file.Size = *resource.Size
	}
	return file
}

func appendResourceLinks(body string, resources []*domain.ShareResource, isHTML bool) string {
	if len(resources) == 0 {
		return body
	}

	var b strings.Builder
	b.WriteString(body)

	if isHTML {
		b.WriteString("<hr><p><strong>Materiais compartilhados:</strong></p><ul>")
		for _, resource := range resources {
			fmt.Fprintf(&b, `<li><a href="%s">%s</a></li>`, html.EscapeString(resource.URL), html.EscapeString(resource.Title))
		}
		b.WriteString("</ul>")
		return b.String()
	}

	b.WriteString("\n\nMateriais compartilhados:\n")
	for _, resource := range resources {
		fmt.Fprintf(&b, "- %s: %s\n", resource.Title, resource.URL)
	}
	return b.String()
}
