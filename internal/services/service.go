package services

import (
	"context"

	"github.com/voxadev/voxa-assist-go/internal/domain"
	"github.com/voxadev/voxa-assist-go/internal/interview"
)

// AnswerKeys groups the default answer keys of a service by outcome.
type AnswerKeys struct {
	Success string
	Okay    string
	Fail    string
}

// Descriptor declares what a service needs before it can run and how it is
// listed. Required parameters are collected in declaration order.
type Descriptor struct {
	ID              string
	IntendedCommand domain.Command
	RequiredParams  []domain.Parameter
	OptionalParams  []domain.Parameter
	Answers         AnswerKeys
	Public          bool
	OwnerID         string // set for non-public plugin services
}

// Service is one executable capability. Run receives a builder whose
// interpretation already carries every declared required parameter built and
// validated; mid-run questions go through the builder.
type Service interface {
	Info() Descriptor
	Run(ctx context.Context, b *interview.Builder) *domain.ServiceResult
}
