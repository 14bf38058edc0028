// file: internals/features/school/homework/dto/homework_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "sekolahku_backend/internals/features/school/homework/model"
)

type CreateHomeworkRequest struct {
	ClassID     uuid.UUID      `json:"class_id" validate:"required"`
	Subject     string         `json:"subject" validate:"required,min=2,max=120"`
	Title       string         `json:"title" validate:"required,min=3,max=160"`
	Description *string        `json:"description" validate:"omitempty"`
	DueDate     string         `json:"due_date" validate:"required,datetime=2006-01-02"`
	Attachments datatypes.JSON `json:"attachments" validate:"omitempty"`
}

func (r CreateHomeworkRequest) ToModel(schoolID, assignedBy uuid.UUID) (*m.HomeworkModel, error) {
	due, err := time.Parse("2006-01-02", r.DueDate)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "due_date harus format YYYY-MM-DD")
	}
	return &m.HomeworkModel{
		HomeworkSchoolID:    schoolID,
		HomeworkClassID:     r.ClassID,
		HomeworkSubject:     strings.TrimSpace(r.Subject),
		HomeworkTitle:       strings.TrimSpace(r.Title),
		HomeworkDescription: r.Description,
		HomeworkDueDate:     due,
		HomeworkAssignedBy:  assignedBy,
		HomeworkAttachments: r.Attachments,
	}, nil
}

type UpdateHomeworkRequest struct {
	Subject     *string        `json:"subject" validate:"omitempty,min=2,max=120"`
	Title       *string        `json:"title" validate:"omitempty,min=3,max=160"`
	Description *string        `json:"description" validate:"omitempty"`
	DueDate     *string        `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	Attachments datatypes.JSON `json:"attachments" validate:"omitempty"`
}

func (r *UpdateHomeworkRequest) ApplyToModel(hw *m.HomeworkModel) error {
	if r.Subject != nil {
		hw.HomeworkSubject = strings.TrimSpace(*r.Subject)
	}
	if r.Title != nil {
		hw.HomeworkTitle = strings.TrimSpace(*r.Title)
	}
	if r.Description != nil {
		hw.HomeworkDescription = r.Description
	}
	if r.DueDate != nil {
		due, err := time.Parse("2006-01-02", *r.DueDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "due_date harus format YYYY-MM-DD")
		}
		hw.HomeworkDueDate = due
	}
	if r.Attachments != nil {
		hw.HomeworkAttachments = r.Attachments
	}
	return nil
}
