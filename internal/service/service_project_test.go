package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-canvas-studio/internal/logger"
	"github.com/MKhiriev/go-canvas-studio/internal/mock"
	"github.com/MKhiriev/go-canvas-studio/internal/store"
	"github.com/MKhiriev/go-canvas-studio/models"
)

func newTestProjectService(ctrl *gomock.Controller) (ProjectService, *mock.MockProjectRepository) {
	projects := mock.NewMockProjectRepository(ctrl)
	return NewProjectService(projects, &fixedIDs{next: "project-1"}, logger.Nop()), projects
}

func TestProjectService_CreateProject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, projects := newTestProjectService(ctrl)
	ctx := context.Background()

	projects.EXPECT().
		CreateProject(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, project models.Project) (models.Project, error) {
			// server-assigned id wins over anything the client sent
			assert.Equal(t, "project-1", project.ID)
			return project, nil
		})

	created, err := svc.CreateProject(ctx, models.Project{ID: "client-chosen", OwnerID: 42, Name: "Poster"})
	require.NoError(t, err)
	assert.Equal(t, "project-1", created.ID)
	assert.Equal(t, "Poster", created.Name)
}

func TestProjectService_CreateProject_NoOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestProjectService(ctrl)

	_, err := svc.CreateProject(context.Background(), models.Project{Name: "Poster"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestProjectService_GetProject_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, projects := newTestProjectService(ctrl)
	ctx := context.Background()

	projects.EXPECT().GetProject(ctx, int64(42), "ghost").Return(models.Project{}, store.ErrProjectNotFound)

	_, err := svc.GetProject(ctx, 42, "ghost")
	assert.ErrorIs(t, err, store.ErrProjectNotFound)
}

func TestProjectService_ListProjects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, projects := newTestProjectService(ctrl)
	ctx := context.Background()

	projects.EXPECT().ListProjects(ctx, int64(42)).Return([]models.Project{{ID: "a"}, {ID: "b"}}, nil)

	list, err := svc.ListProjects(ctx, 42)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestProjectService_UpdateProject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, projects := newTestProjectService(ctrl)
	ctx := context.Background()

	name := "Renamed"
	update := models.ProjectUpdate{Name: &name}
	projects.EXPECT().UpdateProject(ctx, int64(42), "project-1", update).Return(nil)

	require.NoError(t, svc.UpdateProject(ctx, 42, "project-1", update))
}

func TestProjectService_UpdateProject_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestProjectService(ctrl)

	err := svc.UpdateProject(context.Background(), 42, "project-1", models.ProjectUpdate{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestProjectService_DeleteProject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, projects := newTestProjectService(ctrl)
	ctx := context.Background()

	projects.EXPECT().DeleteProject(ctx, int64(42), "project-1").Return(nil)

	require.NoError(t, svc.DeleteProject(ctx, 42, "project-1"))

	err := svc.DeleteProject(ctx, 42, "")
	assert.ErrorIs(t, err, ErrValidationNoProjectID)
}
