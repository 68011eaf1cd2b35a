package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/dto"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/model"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/repository"
	"gorm.io/gorm"
)

func newInterviewService(db *gorm.DB) InterviewService {
	return NewInterviewService(repository.NewInterviewRepository(db), repository.NewUserRepository(db), db)
}

func sampleInterview(company string) dto.InterviewCreateDTO {
	return dto.InterviewCreateDTO{
		Company: company,
		Role:    "SDE I",
		Type:    model.InterviewTypeTechnical,
		Date:    time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		Package: "12 LPA",
		Status:  model.InterviewStatusCompleted,
		Experience: dto.InterviewExperienceDTO{
			Difficulty: model.DifficultyMedium,
			Questions:  []string{"Reverse a linked list"},
			Tips:       []string{"Practice on a whiteboard"},
			Overall:    "Fair process, two rounds",
		},
		Feedback: dto.InterviewFeedbackDTO{Rating: 4, Comments: "Went well"},
	}
}

func TestCreateInterview_IncrementsUserCounter(t *testing.T) {
	db := newTestDB(t)
	svc := newInterviewService(db)
	user := createTestUser(t, db, "iv@example.com")

	created, err := svc.Create(user.ID, sampleInterview("Acme"))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Acme", created.Company)
	assert.Equal(t, model.DifficultyMedium, created.Experience.Difficulty)

	var fresh model.User
	require.NoError(t, db.First(&fresh, user.ID).Error)
	assert.Equal(t, 1, fresh.TotalInterviews)

	_, err = svc.Create(user.ID, sampleInterview("Globex"))
	require.NoError(t, err)
	require.NoError(t, db.First(&fresh, user.ID).Error)
	assert.Equal(t, 2, fresh.TotalInterviews)
}

func TestCreateInterview_DefaultsStatusToScheduled(t *testing.T) {
	db := newTestDB(t)
	svc := newInterviewService(db)
	user := createTestUser(t, db, "ivdefault@example.com")

	req := sampleInterview("Initech")
	req.Status = ""
	created, err := svc.Create(user.ID, req)
	require.NoError(t, err)
	assert.Equal(t, model.InterviewStatusScheduled, created.Status)
}

func TestInterviewOwnerScoping(t *testing.T) {
	db := newTestDB(t)
	svc := newInterviewService(db)
	owner := createTestUser(t, db, "owner@example.com")
	other := createTestUser(t, db, "other@example.com")

	created, err := svc.Create(owner.ID, sampleInterview("Acme"))
	require.NoError(t, err)

	_, err = svc.GetByID(other.ID, created.ID)
	assert.ErrorIs(t, err, ErrInterviewNotFound)

	_, err = svc.Update(other.ID, created.ID, sampleInterview("Hijacked"))
	assert.ErrorIs(t, err, ErrInterviewNotFound)

	err = svc.Delete(other.ID, created.ID)
	assert.ErrorIs(t, err, ErrInterviewNotFound)

	// The owner still sees the untouched record.
	got, err := svc.GetByID(owner.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.Company)
}

func TestUpdateInterview(t *testing.T) {
	db := newTestDB(t)
	svc := newInterviewService(db)
	user := createTestUser(t, db, "ivupdate@example.com")

	created, err := svc.Create(user.ID, sampleInterview("Acme"))
	require.NoError(t, err)

	req := sampleInterview("Acme")
	req.Status = model.InterviewStatusSelected
	req.Feedback = dto.InterviewFeedbackDTO{Rating: 5, Comments: "Offer received"}
	updated, err := svc.Update(user.ID, created.ID, req)
	require.NoError(t, err)
	assert.Equal(t, model.InterviewStatusSelected, updated.Status)
	assert.Equal(t, 5, updated.Feedback.Rating)
}

func TestDeleteInterview(t *testing.T) {
	db := newTestDB(t)
	svc := newInterviewService(db)
	user := createTestUser(t, db, "ivdelete@example.com")

	created, err := svc.Create(user.ID, sampleInterview("Acme"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(user.ID, created.ID))
	_, err = svc.GetByID(user.ID, created.ID)
	assert.ErrorIs(t, err, ErrInterviewNotFound)

	err = svc.Delete(user.ID, created.ID)
	assert.ErrorIs(t, err, ErrInterviewNotFound)
}

func TestListPublic_AnonymizedAndFiltered(t *testing.T) {
	db := newTestDB(t)
	svc := newInterviewService(db)
	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")

	_, err := svc.Create(alice.ID, sampleInterview("Acme"))
	require.NoError(t, err)
	_, err = svc.Create(bob.ID, sampleInterview("Globex"))
	require.NoError(t, err)

	all, err := svc.ListPublic(repository.PublicExperienceFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := svc.ListPublic(repository.PublicExperienceFilter{Company: "glob"})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Globex", filtered[0].Company)
}

func TestListMine_OnlyOwnInterviews(t *testing.T) {
	db := newTestDB(t)
	svc := newInterviewService(db)
	alice := createTestUser(t, db, "mine-a@example.com")
	bob := createTestUser(t, db, "mine-b@example.com")

	_, err := svc.Create(alice.ID, sampleInterview("Acme"))
	require.NoError(t, err)
	_, err = svc.Create(alice.ID, sampleInterview("Globex"))
	require.NoError(t, err)
	_, err = svc.Create(bob.ID, sampleInterview("Initech"))
	require.NoError(t, err)

	aliceList, err := svc.ListByUser(alice.ID)
	require.NoError(t, err)
	assert.Len(t, aliceList, 2)

	bobList, err := svc.ListByUser(bob.ID)
	require.NoError(t, err)
	assert.Len(t, bobList, 1)
}
