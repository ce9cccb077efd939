package langfield_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/langfield/langfield"
	"github.com/langfield/langfield/memo"
)

type article struct {
	langfield.Model
	Field     string
	FieldEn   string
	FieldRu   string
	Caption   string
	CaptionEn int64
}

type draft struct {
	langfield.Model
	Field   string
	FieldEn string
}

type CopySuite struct {
	suite.Suite

	db *gorm.DB
}

func TestCopySuite(t *testing.T) {
	suite.Run(t, new(CopySuite))
}

func (s *CopySuite) SetupTest() {
	s.db, _ = newMockGorm(&s.Suite)
}

func (s *CopySuite) newBehavior(opts ...langfield.Option) *langfield.Behavior {
	opts = append([]langfield.Option{langfield.WithMemo(memo.NewCache())}, opts...)
	behavior, err := langfield.New(s.db, &article{}, opts...)
	s.Require().NoError(err)
	return behavior
}

func (s *CopySuite) TestCopyPropagatesAcrossConfiguredLanguages() {
	behavior := s.newBehavior(langfield.WithLanguages("en", "ru"))

	source := &article{Field: "X"}
	target := &article{}

	ctx := langfield.ToContext(context.Background(), "en")
	s.Require().NoError(behavior.Copy(ctx, target, source, "field"))

	s.Equal("X", target.Field)
	s.Equal("X", target.FieldEn)
	s.Equal("X", target.FieldRu)

	// The application language travels on the context and is never
	// disturbed by a copy.
	s.Equal("en", langfield.FromContext(ctx))
	s.Equal("en", behavior.Language(ctx))
}

func (s *CopySuite) TestCopyFromDifferentRecordType() {
	behavior := s.newBehavior(langfield.WithLanguages("en", "ru"))

	source := &draft{FieldEn: "From Draft"}
	target := &article{}

	ctx := langfield.ToContext(context.Background(), "en")
	s.Require().NoError(behavior.Copy(ctx, target, source, "field"))

	s.Equal("From Draft", target.Field)
	s.Equal("From Draft", target.FieldEn)
	s.Equal("From Draft", target.FieldRu)
}

func (s *CopySuite) TestCopyIntoDifferentRecordType() {
	behavior := s.newBehavior(langfield.WithLanguages("en", "ru"))

	source := &article{Field: "X", FieldRu: "Икс"}
	target := &draft{}

	// The target's own schema decides which columns receive the value:
	// drafts carry field and field_en but no field_ru.
	ctx := langfield.ToContext(context.Background(), "en")
	s.Require().NoError(behavior.Copy(ctx, target, source, "field"))

	s.Equal("X", target.Field)
	s.Equal("X", target.FieldEn)
}

func (s *CopySuite) TestCopyRenamesAttribute() {
	behavior := s.newBehavior(langfield.WithLanguages("en", "ru"))

	source := &draft{Field: "Renamed"}
	target := &article{}

	ctx := langfield.ToContext(context.Background(), "en")
	s.Require().NoError(behavior.Copy(ctx, target, source, "field", "caption"))

	s.Equal("Renamed", target.Caption)
	// caption_ru does not exist and caption_en cannot hold a string; both
	// are skipped without failing the copy.
	s.Equal(int64(0), target.CaptionEn)
	s.Equal("", target.Field)
}

func (s *CopySuite) TestCopyRegionLanguageWritesWholeChain() {
	behavior := s.newBehavior(langfield.WithLanguages("en-US"))

	source := &article{Field: "X"}
	target := &article{}

	ctx := langfield.ToContext(context.Background(), "en")
	s.Require().NoError(behavior.Copy(ctx, target, source, "field"))

	// field_en_us does not exist; the en prefix of the chain does.
	s.Equal("X", target.Field)
	s.Equal("X", target.FieldEn)
	s.Equal("", target.FieldRu)
}

func (s *CopySuite) TestCopyEmptySourceWritesEmpty() {
	behavior := s.newBehavior(langfield.WithLanguages("en"))

	source := &article{}
	target := &article{Field: "old", FieldEn: "old"}

	ctx := langfield.ToContext(context.Background(), "en")
	s.Require().NoError(behavior.Copy(ctx, target, source, "field"))

	s.Equal("", target.Field)
	s.Equal("", target.FieldEn)
}

func (s *CopySuite) TestCopyUnmanagedAttribute() {
	behavior := s.newBehavior(langfield.WithAttributes("field"))

	err := behavior.Copy(context.Background(), &article{}, &article{}, "caption")

	var notManaged *langfield.NotManagedError
	s.Require().True(errors.As(err, &notManaged))
}
