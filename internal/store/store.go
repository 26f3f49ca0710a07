// Package store is the timeout-bounded accessor in front of the database.
// Every operation runs under a fixed 300ms budget; exceeding it surfaces as
// an internal error exactly like a store-reported failure. Nothing here
// retries — retry policy belongs to the caller.
package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/oliverjumpertz/link-shortener/internal/database"
	"github.com/oliverjumpertz/link-shortener/internal/models"
	"github.com/oliverjumpertz/link-shortener/pkg/apperrors"
)

const queryTimeout = 300 * time.Millisecond

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, queryTimeout)
}

// GetLink returns the link for id, or nil if no row exists. Absence is not
// an error.
func GetLink(ctx context.Context, id string) (*models.Link, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var link models.Link
	err := database.DB.WithContext(ctx).First(&link, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return &link, nil
}

// InsertLink persists a new link. A unique violation on the id comes back as
// a Conflict so the caller can retry with a fresh candidate; every other
// failure, timeouts included, is Internal.
func InsertLink(ctx context.Context, id, targetURL string) (*models.Link, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	link := models.Link{ID: id, TargetURL: targetURL}
	if err := database.DB.WithContext(ctx).Create(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict(err)
		}
		return nil, apperrors.Internal(err)
	}
	return &link, nil
}

// UpdateLink changes the target of an existing link. No matching row is
// reported as NotFound.
func UpdateLink(ctx context.Context, id, targetURL string) (*models.Link, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res := database.DB.WithContext(ctx).
		Model(&models.Link{}).
		Where("id = ?", id).
		Update("target_url", targetURL)
	if res.Error != nil {
		return nil, apperrors.Internal(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NotFound("Not found")
	}
	return &models.Link{ID: id, TargetURL: targetURL}, nil
}

// InsertClick appends one click event. The caller decides what to do with a
// failure; this write is best-effort by policy, not by implementation.
func InsertClick(ctx context.Context, event *models.LinkClickEvent) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if err := database.DB.WithContext(ctx).Create(event).Error; err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

// CountClicks groups the click events of a link by (referer, user agent) and
// counts them. A link with no events yields an empty, non-nil slice.
func CountClicks(ctx context.Context, linkID string) ([]models.CountedLinkStatistic, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	statistics := make([]models.CountedLinkStatistic, 0)
	err := database.DB.WithContext(ctx).
		Model(&models.LinkClickEvent{}).
		Select("count(*) as amount, referer, user_agent").
		Where("link_id = ?", linkID).
		Group("link_id, referer, user_agent").
		Scan(&statistics).Error
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return statistics, nil
}

// GetSetting fetches a settings row. A missing row is Internal, not NotFound:
// settings are provisioned out of band and their absence is an operator
// problem, never a client one.
func GetSetting(ctx context.Context, id string) (*models.Setting, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var setting models.Setting
	if err := database.DB.WithContext(ctx).First(&setting, "id = ?", id).Error; err != nil {
		return nil, apperrors.Internal(err)
	}
	return &setting, nil
}
