package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/textproto"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/oliverjumpertz/link-shortener/internal/models"
	"github.com/oliverjumpertz/link-shortener/internal/store"
	"github.com/oliverjumpertz/link-shortener/pkg/apperrors"
	"github.com/oliverjumpertz/link-shortener/pkg/logger"
	"github.com/oliverjumpertz/link-shortener/pkg/metrics"
	"github.com/oliverjumpertz/link-shortener/pkg/shortid"
)

// Shared caches may serve a known redirect for five minutes, including while
// revalidating or when the backend is down. Transient store failures on
// popular links are masked by prior successful responses at the edge.
const cacheControlHeaderValue = "public, max-age=300, s-maxage=300, stale-while-revalidate=300, stale-if-error=300"

const maxCreateAttempts = 3

// newID is swapped out in tests to force id collisions.
var newID = shortid.New

// LinkTarget is the request body for create and update.
type LinkTarget struct {
	TargetURL string `json:"targetUrl"`
}

// canonicalizeURL validates that the input parses as an absolute URL and
// returns its normalized form, which is what gets persisted.
func canonicalizeURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if !u.IsAbs() || u.Host == "" {
		return "", errors.New("url is not absolute")
	}
	return u.String(), nil
}

// respondError maps an AppError onto its HTTP status. Internal and exhausted
// failures get a generic body and feed the error counter; everything else
// carries its specific reason.
func respondError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		appErr = apperrors.Internal(err)
	}
	if appErr.Status() == http.StatusInternalServerError {
		logger.Error().Err(appErr).Str("path", c.FullPath()).Msg("Request failed")
		metrics.RequestErrors.WithLabelValues(c.FullPath()).Inc()
	}
	c.AbortWithStatusJSON(appErr.Status(), gin.H{"error": appErr.Message})
}

// CreateLink handles POST /create
//
// Id candidates are random, so two concurrent creations may collide on the
// links primary key. The store reports that as a Conflict and only a
// Conflict is retried; any other failure aborts immediately.
func CreateLink(c *gin.Context) {
	var body LinkTarget
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, apperrors.InvalidInput("url malformed"))
		return
	}

	targetURL, err := canonicalizeURL(body.TargetURL)
	if err != nil {
		respondError(c, apperrors.InvalidInput("url malformed"))
		return
	}

	for attempt := 0; attempt < maxCreateAttempts; attempt++ {
		id := newID()

		link, err := store.InsertLink(c.Request.Context(), id, targetURL)
		if err == nil {
			logger.Debug().Str("id", link.ID).Str("targetUrl", link.TargetURL).Msg("Created new link")
			c.JSON(http.StatusCreated, link)
			return
		}
		if apperrors.KindOf(err) == apperrors.KindConflict {
			continue
		}
		respondError(c, err)
		return
	}

	logger.Error().Msg("Could not persist new short link. Exhausted all retries of generating a unique id")
	metrics.NoUniqueID.Inc()
	respondError(c, apperrors.Exhausted("Internal server error"))
}

// RedirectLink handles GET /:id
func RedirectLink(c *gin.Context) {
	requestedID := c.Param("id")

	link, err := store.GetLink(c.Request.Context(), requestedID)
	if err != nil {
		respondError(c, err)
		return
	}
	if link == nil {
		respondError(c, apperrors.NotFound("Not found"))
		return
	}

	logger.Debug().Str("id", requestedID).Str("targetUrl", link.TargetURL).Msg("Redirecting link")

	recordClick(c, requestedID)

	// Headers are written directly instead of via c.Redirect: http.Redirect
	// would add an HTML anchor body on GET, and the redirect body must stay
	// empty.
	c.Header("Location", link.TargetURL)
	c.Header("Cache-Control", cacheControlHeaderValue)
	c.Status(http.StatusTemporaryRedirect)
}

// recordClick persists one click event for the redirect in flight. The write
// is bounded by the store timeout and its outcome is only logged; it must
// never change the redirect response. It runs on a fresh context so a client
// disconnect cannot cancel it mid-write.
func recordClick(c *gin.Context, linkID string) {
	event := &models.LinkClickEvent{
		LinkID:    linkID,
		Referer:   optionalHeader(c, "referer"),
		UserAgent: optionalHeader(c, "user-agent"),
	}

	if err := store.InsertClick(context.Background(), event); err != nil {
		logger.Error().Err(err).Str("id", linkID).Msg("Saving a new link click failed")
		return
	}
	logger.Debug().Str("id", linkID).Msg("Persisted new link click")
}

// optionalHeader returns nil only for an absent header, so absence survives
// into the event log as NULL. A header sent with an empty value is recorded
// verbatim as an empty string.
func optionalHeader(c *gin.Context, name string) *string {
	values, ok := c.Request.Header[textproto.CanonicalMIMEHeaderKey(name)]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}

// UpdateLink handles PATCH /:id
//
// An unknown id is reported as 404. The id itself is immutable; only the
// target URL can change.
func UpdateLink(c *gin.Context) {
	linkID := c.Param("id")

	var body LinkTarget
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, apperrors.InvalidInput("url malformed"))
		return
	}

	targetURL, err := canonicalizeURL(body.TargetURL)
	if err != nil {
		respondError(c, apperrors.InvalidInput("url malformed"))
		return
	}

	link, err := store.UpdateLink(c.Request.Context(), linkID, targetURL)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Debug().Str("id", linkID).Str("targetUrl", targetURL).Msg("Updated link")
	c.JSON(http.StatusOK, link)
}

// GetLinkStatistics handles GET /:id/statistics
func GetLinkStatistics(c *gin.Context) {
	linkID := c.Param("id")

	statistics, err := store.CountClicks(c.Request.Context(), linkID)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Debug().Str("id", linkID).Msg("Statistics for link requested")
	c.JSON(http.StatusOK, statistics)
}
