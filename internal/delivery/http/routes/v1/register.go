package v1

import (
	"workmatch/internal/delivery/http/handler"
	"workmatch/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

// Deps carries the built handlers into route registration so wiring
// stays in one place, the app container.
type Deps struct {
	AuthMW *middleware.AuthMiddleware

	Auth      *handler.AuthHandler
	Skills    *handler.SkillHandler
	Profile   *handler.ProfileHandler
	Documents *handler.DocumentHandler
	Postings  *handler.PostingHandler
}

func Register(r fiber.Router, d Deps) {
	if r == nil {
		return
	}

	if d.Auth != nil {
		d.Auth.RegisterRoutes(r.Group("/auth"))
	}

	// Skill search and browsing work before login; a valid token only
	// adds the caller's selection state.
	if d.Skills != nil {
		public := r.Group("")
		if d.AuthMW != nil {
			public = r.Group("", d.AuthMW.OptionalMiddleware())
		}
		d.Skills.RegisterRoutes(public)
	}

	protected := r.Group("")
	if d.AuthMW != nil {
		protected = r.Group("", d.AuthMW.Middleware())
	}

	if d.Profile != nil {
		d.Profile.RegisterRoutes(protected)
	}
	if d.Documents != nil {
		d.Documents.RegisterRoutes(protected)
	}
	if d.Postings != nil {
		d.Postings.RegisterRoutes(protected)
	}
}
