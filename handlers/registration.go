package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"amora/models"
	"amora/services/registration"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var registrationService registration.RegistrationService

// SetRegistrationService injects the registration service used by the
// wizard handlers.
func SetRegistrationService(svc registration.RegistrationService) {
	registrationService = svc
}

// StartRegistrationHandler handles POST /api/registration/start.
func StartRegistrationHandler(c *gin.Context) {
	logger := getLogger(c)
	view, err := registrationService.Start(c.Request.Context())
	if err != nil {
		var catErr *registration.CatalogError
		if errors.As(err, &catErr) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Registration is not configured yet. Please try again later."})
			return
		}
		logger.Error("Failed to start registration", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start registration"})
		return
	}
	c.JSON(http.StatusCreated, view)
}

// GetRegistrationHandler handles GET /api/registration/:sessionID.
func GetRegistrationHandler(c *gin.Context) {
	view, err := registrationService.Get(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// UpdateFieldsHandler handles PUT /api/registration/:sessionID/fields.
func UpdateFieldsHandler(c *gin.Context) {
	var req models.UpdateFieldsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	view, err := registrationService.UpdateFields(c.Request.Context(), c.Param("sessionID"), req.Fields)
	if err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// NextStepHandler handles POST /api/registration/:sessionID/next.
func NextStepHandler(c *gin.Context) {
	view, err := registrationService.Next(c.Request.Context(), c.Param("sessionID"))
	respondStepTransition(c, view, err)
}

// PrevStepHandler handles POST /api/registration/:sessionID/prev.
func PrevStepHandler(c *gin.Context) {
	view, err := registrationService.Prev(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// JumpToStepHandler handles POST /api/registration/:sessionID/jump.
func JumpToStepHandler(c *gin.Context) {
	var req models.JumpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	view, err := registrationService.JumpTo(c.Request.Context(), c.Param("sessionID"), req.Step)
	respondStepTransition(c, view, err)
}

// AttachPhotoHandler handles POST /api/registration/:sessionID/photos.
func AttachPhotoHandler(c *gin.Context) {
	var req models.AttachPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	view, err := registrationService.AttachPhoto(c.Request.Context(), c.Param("sessionID"), req.ContentType, req.Data)
	if err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// RemovePhotoHandler handles DELETE /api/registration/:sessionID/photos/:index.
func RemovePhotoHandler(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid photo index"})
		return
	}
	view, err := registrationService.RemovePhoto(c.Request.Context(), c.Param("sessionID"), index)
	if err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SubmitRegistrationHandler handles POST /api/registration/:sessionID/submit.
func SubmitRegistrationHandler(c *gin.Context) {
	logger := getLogger(c)
	resp, err := registrationService.Submit(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		var stepErr *registration.StepIncompleteError
		if errors.As(err, &stepErr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":       "Please fix the highlighted fields",
				"fieldErrors": stepErr.Fields,
			})
			return
		}
		var authErr *registration.AuthError
		if errors.As(err, &authErr) {
			c.JSON(http.StatusConflict, gin.H{"error": authErr.Reason})
			return
		}
		if errors.Is(err, registration.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session expired. Please start again."})
			return
		}
		logger.Error("Submission failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Submission failed, please try again"})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// respondStepTransition renders the outcome of next/jump: a blocked step is
// a 422 carrying the field errors plus the refreshed step view.
func respondStepTransition(c *gin.Context, view *registration.StepView, err error) {
	if err == nil {
		c.JSON(http.StatusOK, view)
		return
	}
	var stepErr *registration.StepIncompleteError
	if errors.As(err, &stepErr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":       "Please complete this step before continuing",
			"fieldErrors": stepErr.Fields,
			"view":        view,
		})
		return
	}
	respondSessionError(c, err)
}

func respondSessionError(c *gin.Context, err error) {
	if errors.Is(err, registration.ErrSessionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session expired. Please start again."})
		return
	}
	getLogger(c).Error("Registration request failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong, please try again"})
}
