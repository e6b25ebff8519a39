package services

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techagentng/itsm-backend/db"
	"github.com/techagentng/itsm-backend/models"
	"gorm.io/gorm"
)

type fakeIncidentRepo struct {
	incident    *models.Incident
	incidents   []models.Incident
	counts      []models.NameCount
	topAsset    *models.TopIncidentAsset
	topResolver *models.TopIncidentResolver
	err         error

	createdCategories []uint
	recentLimit       int
}

func (r *fakeIncidentRepo) CreateIncident(incident *models.Incident, categoryIDs []uint) (*models.Incident, error) {
	r.createdCategories = categoryIDs
	if r.err != nil {
		return nil, r.err
	}
	return incident, nil
}

func (r *fakeIncidentRepo) FindIncidentByID(id uint) (*models.Incident, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.incident, nil
}

func (r *fakeIncidentRepo) GetAllIncidents() ([]models.Incident, error) {
	return r.incidents, r.err
}

func (r *fakeIncidentRepo) UpdateIncident(incident *models.Incident, categoryIDs []uint) (*models.Incident, error) {
	if r.err != nil {
		return nil, r.err
	}
	return incident, nil
}

func (r *fakeIncidentRepo) DeleteIncident(id uint) error {
	return r.err
}

func (r *fakeIncidentRepo) CountIncidentsByPriority() ([]models.NameCount, error) {
	return r.counts, r.err
}

func (r *fakeIncidentRepo) GetAssetWithMostIncidents() (*models.TopIncidentAsset, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.topAsset, nil
}

func (r *fakeIncidentRepo) GetTopIncidentResolver() (*models.TopIncidentResolver, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.topResolver, nil
}

func (r *fakeIncidentRepo) GetRecentIncidents(limit int) ([]models.Incident, error) {
	r.recentLimit = limit
	return r.incidents, r.err
}

func TestCreateIncidentDefaultsToNew(t *testing.T) {
	repo := &fakeIncidentRepo{}
	svc := NewIncidentService(repo)

	input := &models.CreateIncidentInput{}
	input.Title = "printer on fire"
	input.Description = "smoke from tray 2"
	input.Priority = "CRITICAL"
	input.Categories = []uint{1, 2}
	input.ReporterID = 5

	incident, err := svc.CreateIncident(input)
	require.Nil(t, err)
	assert.Equal(t, models.IncidentStatusNew, incident.Status)
	assert.Equal(t, models.IncidentPriorityCritical, incident.Priority)
	assert.Equal(t, []uint{1, 2}, repo.createdCategories)
}

func TestCreateIncidentBadCategoryReference(t *testing.T) {
	repo := &fakeIncidentRepo{err: gorm.ErrForeignKeyViolated}
	svc := NewIncidentService(repo)

	input := &models.CreateIncidentInput{}
	input.Title = "t"
	input.Description = "d"
	input.Categories = []uint{999}
	input.ReporterID = 1

	_, err := svc.CreateIncident(input)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.Status)
}

func TestDeleteIncidentNotFound(t *testing.T) {
	repo := &fakeIncidentRepo{err: gorm.ErrRecordNotFound}
	svc := NewIncidentService(repo)

	err := svc.DeleteIncident(99)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusNotFound, err.Status)
}

func TestTopIncidentResolverEmptySet(t *testing.T) {
	repo := &fakeIncidentRepo{err: db.ErrEmptyResult}
	svc := NewIncidentService(repo)

	_, err := svc.TopIncidentResolver()
	require.NotNil(t, err)
	assert.Equal(t, http.StatusInternalServerError, err.Status)
}

func TestRecentIncidentsLimit(t *testing.T) {
	repo := &fakeIncidentRepo{}
	svc := NewIncidentService(repo)

	_, err := svc.RecentIncidents()
	require.Nil(t, err)
	assert.Equal(t, 5, repo.recentLimit)
}

func TestIncidentsByPriorityPassthrough(t *testing.T) {
	repo := &fakeIncidentRepo{counts: []models.NameCount{
		{Name: "CRITICAL", Total: 3},
		{Name: "LOW", Total: 7},
	}}
	svc := NewIncidentService(repo)

	rows, err := svc.IncidentsByPriority()
	require.Nil(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "CRITICAL", rows[0].Name)
	assert.EqualValues(t, 3, rows[0].Total)
}
