package langfield

import (
	"time"

	"github.com/pitabwire/util"
	"github.com/rs/xid"
	"gorm.io/gorm"
)

// Model base table struct to be embedded by localized models. It supplies
// the single string identity column List keys its results on.
type Model struct {
	ID         string `gorm:"type:varchar(50);primary_key"`
	CreatedAt  time.Time
	ModifiedAt time.Time
	Version    uint           `gorm:"DEFAULT 0"`
	DeletedAt  gorm.DeletedAt `sql:"index"`
}

func (m *Model) GetID() string {
	return m.ID
}

// GenID creates a new id for the model if it has none.
func (m *Model) GenID() {
	if m.ID == "" {
		m.ID = util.IDString()
	}
}

// ValidXID validates that the supplied string is an xid.
func (m *Model) ValidXID(id string) bool {
	_, err := xid.FromString(id)
	return err == nil
}

func (m *Model) GetVersion() uint {
	return m.Version
}

// BeforeSave ensures timestamps are maintained on upserts.
func (m *Model) BeforeSave(db *gorm.DB) error {
	return m.BeforeCreate(db)
}

func (m *Model) BeforeCreate(_ *gorm.DB) error {
	if m.Version <= 0 {
		m.CreatedAt = time.Now()
		m.ModifiedAt = time.Now()
		m.Version = 1
	}

	m.GenID()
	return nil
}

// BeforeUpdate maintains the modification stamp and version counter.
func (m *Model) BeforeUpdate(_ *gorm.DB) error {
	m.ModifiedAt = time.Now()
	m.Version++
	return nil
}
