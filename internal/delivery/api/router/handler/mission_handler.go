package handler

import (
	"net/http"

	"mutant-admin/internal/delivery/api/response"
	"mutant-admin/internal/usecase"

	"github.com/labstack/echo/v4"
)

type MissionHandler struct {
	missionUC usecase.MissionUsecase
}

func NewMissionHandler(missionUC usecase.MissionUsecase) *MissionHandler {
	return &MissionHandler{missionUC: missionUC}
}

// List handles GET /api/admin/missions
func (h *MissionHandler) List(c echo.Context) error {
	query, err := listQuery(c)
	if err != nil {
		return err
	}

	page, err := h.missionUC.ListMissions(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return response.List(c, page)
}

// Get handles GET /api/admin/missions/:id
func (h *MissionHandler) Get(c echo.Context) error {
	mission, err := h.missionUC.GetMission(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, mission)
}

// Delete handles DELETE /api/admin/missions/:id
func (h *MissionHandler) Delete(c echo.Context) error {
	if err := h.missionUC.DeleteMission(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return response.Message(c, http.StatusOK, "Mission deleted", nil)
}

// Publish handles PUT /api/admin/missions/:id/publish
func (h *MissionHandler) Publish(c echo.Context) error {
	var req usecase.PublishInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	mission, err := h.missionUC.SetPublished(c.Request().Context(), c.Param("id"), *req.IsPublished)
	if err != nil {
		return err
	}

	message := "Mission unpublished"
	if mission.Publication.IsPublished() {
		message = "Mission published"
	}

	return response.Message(c, http.StatusOK, message, mission)
}
