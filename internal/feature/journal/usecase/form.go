package usecase

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"stock_journal/internal/feature/journal/domain/entity"
)

// FormState tracks the submission lifecycle of an entry form.
type FormState int

const (
	// FormIdle means the form is editable and can be submitted.
	FormIdle FormState = iota
	// FormSubmitting means a submission is in flight; resubmission is
	// blocked until it resolves.
	FormSubmitting
	// FormCompleted means the submission succeeded. The state is terminal:
	// the form is expected to be discarded by its owner.
	FormCompleted
)

// JournalWriter is the slice of the journal the form dispatches through.
type JournalWriter interface {
	Insert(ctx context.Context, p EntryPayload) error
	Update(ctx context.Context, id string, patch EntryPatch) error
}

// Draft holds the form's field values. Price is kept as text until
// submission so partial input never fails early.
type Draft struct {
	Ticker       string
	CompanyName  string
	PriceAtEntry string
	Sentiment    string
	Content      string
}

// EntryForm owns a draft entry and dispatches it through the journal.
// A zero editID means create mode; otherwise Submit updates that entry.
type EntryForm struct {
	journal JournalWriter
	editID  string

	Draft  Draft
	state  FormState
	errMsg string
}

// NewEntryForm creates a form in create mode with an empty draft and
// sentiment defaulted to Neutral.
func NewEntryForm(journal JournalWriter) *EntryForm {
	return &EntryForm{
		journal: journal,
		Draft:   Draft{Sentiment: string(entity.SentimentNeutral)},
	}
}

// NewEditForm creates a form in edit mode with the draft seeded from the
// existing entry. The numeric price is rendered as text for editing.
func NewEditForm(journal JournalWriter, e entity.Entry) *EntryForm {
	return &EntryForm{
		journal: journal,
		editID:  e.ID,
		Draft: Draft{
			Ticker:       e.Ticker,
			CompanyName:  e.CompanyName,
			PriceAtEntry: e.PriceAtEntry.String(),
			Sentiment:    string(e.Sentiment),
			Content:      e.Content,
		},
	}
}

// Submit validates the draft and dispatches it. Required fields must all be
// non-empty and the price must parse as a number; validation failures block
// submission locally without touching the store. On store failure the draft
// is kept and ErrMessage carries a user-readable description. On success the
// form transitions to Completed and cannot be submitted again.
func (f *EntryForm) Submit(ctx context.Context) error {
	if f.state != FormIdle {
		return nil
	}
	f.errMsg = ""

	if f.Draft.Ticker == "" || f.Draft.CompanyName == "" ||
		f.Draft.PriceAtEntry == "" || f.Draft.Content == "" {
		f.errMsg = ErrMissingFields.Error()
		return ErrMissingFields
	}

	price, err := decimal.NewFromString(strings.TrimSpace(f.Draft.PriceAtEntry))
	if err != nil {
		f.errMsg = ErrInvalidPrice.Error()
		return ErrInvalidPrice
	}

	sentiment := entity.Sentiment(f.Draft.Sentiment)
	if sentiment == "" {
		sentiment = entity.SentimentNeutral
	}
	if !sentiment.Valid() {
		f.errMsg = ErrInvalidSentiment.Error()
		return ErrInvalidSentiment
	}

	ticker := strings.ToUpper(f.Draft.Ticker)
	companyName := f.Draft.CompanyName
	content := f.Draft.Content

	f.state = FormSubmitting

	if f.editID != "" {
		err = f.journal.Update(ctx, f.editID, EntryPatch{
			Ticker:       &ticker,
			CompanyName:  &companyName,
			PriceAtEntry: &price,
			Sentiment:    &sentiment,
			Content:      &content,
		})
	} else {
		err = f.journal.Insert(ctx, EntryPayload{
			Ticker:       ticker,
			CompanyName:  companyName,
			PriceAtEntry: price,
			Sentiment:    sentiment,
			Content:      content,
		})
	}

	if err != nil {
		f.state = FormIdle
		f.errMsg = "Failed to save entry: " + err.Error()
		return err
	}

	f.state = FormCompleted
	return nil
}

// State returns the form's current lifecycle state.
func (f *EntryForm) State() FormState { return f.state }

// Submitting reports whether a submission is in flight.
func (f *EntryForm) Submitting() bool { return f.state == FormSubmitting }

// Completed reports whether the submission succeeded.
func (f *EntryForm) Completed() bool { return f.state == FormCompleted }

// ErrMessage returns the user-readable message from the last failure, or
// the empty string.
func (f *EntryForm) ErrMessage() string { return f.errMsg }
