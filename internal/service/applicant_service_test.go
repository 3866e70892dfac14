package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quangdng/talentgate/internal/dto"
)

func TestApplicantService_CreateApplicant(t *testing.T) {
	repo := newFakeApplicantRepo()
	svc := NewApplicantService(repo)

	resp, err := svc.CreateApplicant(dto.CreateApplicantRequest{
		FirstName: "Jane",
		LastName:  "Doe",
	})

	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "Jane", resp.FirstName)
	assert.Equal(t, "Doe", resp.LastName)
	assert.False(t, resp.CreatedAt.IsZero())
}

func TestApplicantService_CreateApplicant_PersistenceError(t *testing.T) {
	dbErr := errors.New("pq: relation does not exist")
	repo := newFakeApplicantRepo()
	repo.createErr = dbErr
	svc := NewApplicantService(repo)

	resp, err := svc.CreateApplicant(dto.CreateApplicantRequest{FirstName: "Jane", LastName: "Doe"})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, dbErr)
}
