package api

import (
	"github.com/orbya/portfolio-backend/database"
	"github.com/orbya/portfolio-backend/errs"
	"github.com/orbya/portfolio-backend/models"
)

func newSkillHandler(store *database.Store[int, models.Skill]) resourceHandler[models.Skill] {
	validate := func(s *models.Skill) *errs.ApiErr {
		if s.Name == "" {
			return errs.NewMissingRequiredFieldError("name")
		}
		return nil
	}

	normalize := func(s *models.Skill, id int) {
		s.ID = id
	}

	return newResourceHandler("skill", store, validate, normalize)
}
