package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"sihportal/internal/logger"
	"sihportal/internal/portal"
	"sihportal/internal/storage"
)

// Handler holds the portal service and everything the HTTP layer needs.
type Handler struct {
	svc    *portal.Service
	tokens *TokenManager
	log    *logger.Logger

	adminUser     string
	adminPassword string
}

func NewHandler(svc *portal.Service, tokens *TokenManager, adminUser, adminPassword string, log *logger.Logger) *Handler {
	return &Handler{
		svc:           svc,
		tokens:        tokens,
		log:           log,
		adminUser:     adminUser,
		adminPassword: adminPassword,
	}
}

func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// --- Public ---

type registerRequest struct {
	TeamName     string   `json:"teamName" binding:"required"`
	ContactEmail string   `json:"contactEmail" binding:"required"`
	Members      []string `json:"members" binding:"required"`
}

func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.svc.Register(c.Request.Context(), portal.RegisterInput{
		TeamName:     req.TeamName,
		ContactEmail: req.ContactEmail,
		Members:      req.Members,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	resp := gin.H{"teamId": res.TeamID, "emailSent": res.Mailed}
	if !res.Mailed {
		// No relay available; the frontend shows the credential once.
		resp["password"] = res.Password
	}
	c.JSON(http.StatusCreated, resp)
}

type loginRequest struct {
	TeamID   string `json:"teamId" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.svc.Login(c.Request.Context(), req.TeamID, req.Password)
	if err != nil {
		h.fail(c, err)
		return
	}
	token, err := h.tokens.Issue(team.TeamID, RoleTeam)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"team": gin.H{
			"teamId":       team.TeamID,
			"teamName":     team.TeamName,
			"contactEmail": team.ContactEmail,
			"members":      team.Members,
		},
	})
}

type resetPasswordRequest struct {
	TeamID       string `json:"teamId" binding:"required"`
	ContactEmail string `json:"contactEmail" binding:"required"`
}

func (h *Handler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.svc.ResetPassword(c.Request.Context(), req.TeamID, req.ContactEmail)
	if err != nil {
		h.fail(c, err)
		return
	}

	resp := gin.H{"emailSent": res.Mailed}
	if !res.Mailed {
		resp["password"] = res.Password
	}
	c.JSON(http.StatusOK, resp)
}

// Logout exists for frontend symmetry. Tokens are stateless, so discarding
// the client copy is the whole operation.
func (h *Handler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *Handler) ListProblems(c *gin.Context) {
	problems := h.svc.Catalog().ByTheme(c.Query("theme"))
	c.JSON(http.StatusOK, gin.H{"problems": problems, "count": len(problems)})
}

func (h *Handler) ListThemes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"themes": h.svc.Catalog().Themes()})
}

// --- Team ---

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

func (h *Handler) ChangePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.svc.ChangePassword(c.Request.Context(), teamID(c), req.CurrentPassword, req.NewPassword); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}

func (h *Handler) Dashboard(c *gin.Context) {
	d, err := h.svc.Dashboard(c.Request.Context(), teamID(c))
	if err != nil {
		h.fail(c, err)
		return
	}

	resp := gin.H{
		"team": gin.H{
			"teamId":       d.Team.TeamID,
			"teamName":     d.Team.TeamName,
			"contactEmail": d.Team.ContactEmail,
			"members":      d.Team.Members,
		},
		"hasResearch": d.HasResearch,
	}
	if d.Selection != nil {
		resp["selection"] = gin.H{
			"problemId":    d.Selection.ProblemID,
			"problemTitle": d.Selection.ProblemTitle,
			"theme":        d.Selection.Theme,
			"selectedAt":   d.Selection.SelectedAt,
		}
	}
	c.JSON(http.StatusOK, resp)
}

type selectRequest struct {
	ProblemID string `json:"problemId" binding:"required"`
}

func (h *Handler) SaveSelection(c *gin.Context) {
	var req selectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sel, err := h.svc.SaveSelection(c.Request.Context(), teamID(c), req.ProblemID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"problemId":    sel.ProblemID,
		"problemTitle": sel.ProblemTitle,
		"theme":        sel.Theme,
	})
}

type generateRequest struct {
	ProblemID  string `json:"problemId" binding:"required"`
	Idea       string `json:"idea"`
	Regenerate bool   `json:"regenerate"`
}

func (h *Handler) GenerateResearch(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	research, err := h.svc.GenerateResearch(c.Request.Context(), teamID(c), req.ProblemID, req.Idea, req.Regenerate)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, research)
}

func (h *Handler) GetResearch(c *gin.Context) {
	research, err := h.svc.GetResearch(c.Request.Context(), teamID(c), c.Param("problem_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, research)
}

func (h *Handler) DownloadDeck(c *gin.Context) {
	problemID := c.Param("problem_id")
	deck, err := h.svc.RenderDeck(c.Request.Context(), teamID(c), problemID)
	if err != nil {
		h.fail(c, err)
		return
	}

	filename := fmt.Sprintf("presentation-%s.txt", problemID)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(deck))
}

// fail maps service errors onto HTTP statuses.
func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, portal.ErrBadCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, portal.ErrDuplicateTeam):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, portal.ErrTooFewMembers),
		errors.Is(err, portal.ErrWeakPassword),
		errors.Is(err, portal.ErrEmailMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, portal.ErrProblemNotFound),
		errors.Is(err, portal.ErrNoSelection),
		errors.Is(err, portal.ErrNoResearch),
		errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.log.Error("request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
