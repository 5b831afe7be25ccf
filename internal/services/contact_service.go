package services

import (
	"context"
	"errors"

	"github.com/leopard-dev/portfolio-backend/internal/models"
	pgrepo "github.com/leopard-dev/portfolio-backend/internal/repositories/postgres"
	"github.com/leopard-dev/portfolio-backend/internal/utils"
)

type ContactInput struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message"`
}

type ContactService interface {
	Submit(ctx context.Context, in ContactInput) (*models.ContactMessage, error)
	List(ctx context.Context, status string) ([]models.ContactMessage, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	Delete(ctx context.Context, id uint) error
	Stats(ctx context.Context) (*models.ContactStats, error)
}

type contactService struct {
	messages pgrepo.ContactRepository
}

func NewContactService(messages pgrepo.ContactRepository) ContactService {
	return &contactService{messages: messages}
}

func (s *contactService) Submit(ctx context.Context, in ContactInput) (*models.ContactMessage, error) {
	const op = "ContactService.Submit"

	var fields []utils.FieldError
	if in.Name == "" {
		fields = append(fields, utils.FieldError{Field: "name", Message: "Name is required"})
	}
	if !validEmail(in.Email) {
		fields = append(fields, utils.FieldError{Field: "email", Message: "Please include a valid email"})
	}
	if in.Message == "" {
		fields = append(fields, utils.FieldError{Field: "message", Message: "Message is required"})
	}
	if len(fields) > 0 {
		return nil, utils.Ev(op, fields)
	}

	row := &models.ContactMessage{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
		Status:  models.MessageUnread,
	}
	if err := s.messages.Insert(ctx, row); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "Failed to send message. Please try again later.", err)
	}
	return row, nil
}

func (s *contactService) List(ctx context.Context, status string) ([]models.ContactMessage, error) {
	const op = "ContactService.List"

	out, err := s.messages.List(ctx, status)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list messages", err)
	}
	return out, nil
}

func (s *contactService) UpdateStatus(ctx context.Context, id uint, status string) error {
	const op = "ContactService.UpdateStatus"

	if !models.ValidMessageStatus(status) {
		return utils.Ev(op, []utils.FieldError{
			{Field: "status", Message: "Status must be one of unread, read, replied"},
		})
	}

	if err := s.messages.UpdateStatus(ctx, id, models.MessageStatus(status)); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "Message not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to update message status", err)
	}
	return nil
}

func (s *contactService) Delete(ctx context.Context, id uint) error {
	const op = "ContactService.Delete"

	if err := s.messages.Delete(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "Message not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete message", err)
	}
	return nil
}

func (s *contactService) Stats(ctx context.Context) (*models.ContactStats, error) {
	const op = "ContactService.Stats"

	stats, err := s.messages.Stats(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to compute message stats", err)
	}
	return stats, nil
}
