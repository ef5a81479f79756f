// Package section records the outcome of each wizard task on the remote
// submission. Every update reads the whole submission, patches one key and
// writes the whole submission back; it is never retried.
package section

import (
	"context"

	"github.com/mbolis/confirmation-statement/log"
	"github.com/mbolis/confirmation-statement/model"
	"github.com/pkg/errors"
)

type SubmissionAPI interface {
	GetSubmission(ctx context.Context, transactionID, submissionID string) (*model.Submission, error)
	PutSubmission(ctx context.Context, transactionID, submissionID string, s *model.Submission) error
}

// Observer is told about every section written.
type Observer func(section model.Section, status model.Status)

type Updater struct {
	api      SubmissionAPI
	observer Observer
}

func NewUpdater(api SubmissionAPI, observer Observer) *Updater {
	return &Updater{api: api, observer: observer}
}

// BuildSectionData builds the stored value of section. The statement of
// capital section takes a *model.StatementOfCapital payload and the email
// section a string; any other section ignores its payload.
func BuildSectionData(section model.Section, status model.Status, payload any) (model.SectionData, error) {
	data := model.SectionData{SectionStatus: status}
	if payload == nil {
		return data, nil
	}

	switch section {
	case model.SectionSOC:
		soc, ok := payload.(*model.StatementOfCapital)
		if !ok {
			return data, errors.Errorf("statement of capital payload has type %T", payload)
		}
		data.StatementOfCapital = soc
	case model.SectionEmail:
		email, ok := payload.(string)
		if !ok {
			return data, errors.Errorf("email address payload has type %T", payload)
		}
		data.RegisteredEmailAddress = email
	}
	return data, nil
}

func (u *Updater) UpdateSection(ctx context.Context, ref model.SubmissionRef, section model.Section, status model.Status, payload any) error {
	data, err := BuildSectionData(section, status, payload)
	if err != nil {
		return err
	}

	err = u.patch(ctx, ref, func(d model.SubmissionData) error {
		return d.SetSection(section, data)
	})
	if err != nil {
		return errors.Wrapf(err, "update section %s", section)
	}

	log.Debugf("section %s of submission %s set to %s", section, ref.SubmissionID, status)
	if u.observer != nil {
		u.observer(section, status)
	}
	return nil
}

func (u *Updater) UpdateTradingStatus(ctx context.Context, ref model.SubmissionRef, answer bool) error {
	err := u.patch(ctx, ref, func(d model.SubmissionData) error {
		return d.SetTradingStatus(answer)
	})
	return errors.Wrap(err, "update trading status")
}

func (u *Updater) UpdateLawfulPurposeAcceptance(ctx context.Context, ref model.SubmissionRef, accepted bool) error {
	err := u.patch(ctx, ref, func(d model.SubmissionData) error {
		return d.SetLawfulPurposeAccepted(accepted)
	})
	return errors.Wrap(err, "update lawful purpose acceptance")
}

func (u *Updater) patch(ctx context.Context, ref model.SubmissionRef, set func(model.SubmissionData) error) error {
	submission, err := u.api.GetSubmission(ctx, ref.TransactionID, ref.SubmissionID)
	if err != nil {
		return err
	}
	if submission.Data == nil {
		submission.Data = model.SubmissionData{}
	}
	if err := set(submission.Data); err != nil {
		return err
	}
	return u.api.PutSubmission(ctx, ref.TransactionID, ref.SubmissionID, submission)
}
