package api

import (
	"fmt"

	"github.com/orbya/portfolio-backend/database"
	"github.com/orbya/portfolio-backend/errs"
	"github.com/orbya/portfolio-backend/models"
	"github.com/orbya/portfolio-backend/services"
)

// newProjectHandler instantiates the CRUD facade for projects. Projects
// are the one entity kind with derived fields: a missing thumbnail is
// resolved from the video URL and the aspect ratio defaults to 16:9.
func newProjectHandler(store *database.Store[int, models.Project]) resourceHandler[models.Project] {
	validate := func(p *models.Project) *errs.ApiErr {
		if p.Title == "" {
			return errs.NewMissingRequiredFieldError("title")
		}
		if p.Category == "" {
			return errs.NewMissingRequiredFieldError("category")
		}
		if p.AspectRatio != "" && !models.ValidAspectRatio(p.AspectRatio) {
			return errs.NewValidationError("aspectRatio", fmt.Sprintf("must be one of %v", models.AspectRatios))
		}
		return nil
	}

	normalize := func(p *models.Project, id int) {
		p.ID = id
		if p.Tags == nil {
			p.Tags = []string{}
		}
		if p.AspectRatio == "" {
			p.AspectRatio = models.DefaultAspectRatio
		}
		if p.Thumbnail == "" && p.VideoURL != "" {
			p.Thumbnail = services.ResolveThumbnail(p.VideoURL)
		}
	}

	return newResourceHandler("project", store, validate, normalize)
}
