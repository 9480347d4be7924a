package services

import (
	"testing"

	"github.com/shirasagi-dev/shukatsu-tracker/internal/dtos"
	"github.com/shirasagi-dev/shukatsu-tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserDeleteCascadesEverythingOwned(t *testing.T) {
	db := newTestDB(t)
	companies := NewCompanyService(db)
	interviews := NewInterviewService(db)
	tasks := NewTaskService(db)
	memos := NewMemoService(db)
	users := NewUserService(db)
	alice := newTestUser(t, db, "alice")
	bob := newTestUser(t, db, "bob")

	acme, err := companies.Create(alice, &dtos.CompanyRequest{Name: "Acme"})
	require.NoError(t, err)
	_, err = interviews.Create(alice, acme.ID, &dtos.InterviewRequest{})
	require.NoError(t, err)
	_, err = tasks.Create(alice, nil, &dtos.TaskRequest{Content: "free-standing"})
	require.NoError(t, err)
	_, err = memos.Create(alice, nil, &dtos.MemoRequest{Title: "t", Content: "c"})
	require.NoError(t, err)

	bobsCo, err := companies.Create(bob, &dtos.CompanyRequest{Name: "Bobs"})
	require.NoError(t, err)

	require.NoError(t, users.Delete(alice))

	for _, tbl := range []interface{}{
		&models.Company{}, &models.Interview{}, &models.Task{}, &models.Memo{}, &models.Session{},
	} {
		var count int64
		require.NoError(t, db.Model(tbl).Where("user_id = ?", alice).Count(&count).Error)
		assert.Zero(t, count, "%T rows owned by the deleted user must be gone", tbl)
	}
	var gone models.User
	assert.Error(t, db.First(&gone, alice).Error)

	// Bob is untouched.
	var stillThere models.Company
	require.NoError(t, db.First(&stillThere, bobsCo.ID).Error)
}
