package endpoints

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Solace-Health-LLC/beacon/internal/calendar"
	"github.com/Solace-Health-LLC/beacon/internal/http/api"
	"github.com/Solace-Health-LLC/beacon/internal/model"
)

type CalendarController struct {
	provider calendar.Provider
}

// CalendarModule serves the holiday table to the admin schedule viewer.
// This is display data only; the schedule evaluator never reads it.
func CalendarModule(provider calendar.Provider) api.Module {
	ctl := &CalendarController{provider: provider}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/calendar/:year", ctl.holidaysForYear)
	})
}

func (cc *CalendarController) holidaysForYear(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	year, err := strconv.Atoi(ctx.Param("year"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid year"}
	}
	return gin.H{"year": year, "holidays": cc.provider.HolidaysForYear(year)}, nil
}
