package module

import (
	"glowup-diaries/internal/module/admin"
	"glowup-diaries/internal/module/contact"
	"glowup-diaries/internal/module/email"
	"glowup-diaries/internal/module/event"
	"glowup-diaries/internal/module/featured"
	"glowup-diaries/internal/module/job"
	"glowup-diaries/internal/module/opportunity"
	"glowup-diaries/internal/module/ping"
	"glowup-diaries/internal/module/resource"

	"github.com/gin-gonic/gin"
)

type Module interface {
	GetName() string
	Init()
	InitRouter(r *gin.RouterGroup)
}

var Modules []Module

func registerModule(m []Module) {
	Modules = append(Modules, m...)
}

func init() {
	// Register your module here
	registerModule([]Module{
		&ping.ModulePing{},
		&featured.ModuleFeatured{},
		&event.ModuleEvent{},
		&opportunity.ModuleOpportunity{},
		&job.ModuleJob{},
		&resource.ModuleResource{},
		&contact.ModuleContact{},
		&email.ModuleEmail{},
		&admin.ModuleAdmin{},
	})
}
