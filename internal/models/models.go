package models

// Link maps a short id to its target URL. The id is immutable once created;
// only the target may be updated afterwards.
type Link struct {
	ID        string `gorm:"primaryKey" json:"id"`
	TargetURL string `gorm:"not null" json:"targetUrl"`
}

// LinkClickEvent records one observed resolution of a link. LinkID is a weak
// reference: events are never validated against link existence before write.
type LinkClickEvent struct {
	ID        uint    `gorm:"primaryKey" json:"-"`
	LinkID    string  `gorm:"index;column:link_id" json:"linkId"`
	Referer   *string `json:"referer"`
	UserAgent *string `json:"userAgent"`
}

func (LinkClickEvent) TableName() string {
	return "link_statistics"
}

// CountedLinkStatistic is the grouped-count projection over click events.
// It is computed on demand, never persisted.
type CountedLinkStatistic struct {
	Amount    int64   `json:"amount"`
	Referer   *string `json:"referer"`
	UserAgent *string `json:"userAgent"`
}

// Setting is an externally provisioned configuration row. The global API key
// is stored as a hex-encoded SHA3-256 digest, never in the clear.
type Setting struct {
	ID                    string `gorm:"primaryKey" json:"id"`
	EncryptedGlobalAPIKey string `gorm:"column:encrypted_global_api_key;not null" json:"-"`
}
