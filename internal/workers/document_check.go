// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"time"

	"github.com/Dev-vesper/notepad/internal/logger"
	"github.com/Dev-vesper/notepad/internal/store"
)

// DocumentCheckWorker periodically parses the documents of every user and
// reports the ones that cannot be read. It never repairs a document.
type DocumentCheckWorker struct {
	storage  store.DocumentStorage
	interval time.Duration

	logger *logger.Logger
}

func NewDocumentCheckWorker(storage store.DocumentStorage, interval time.Duration, logger *logger.Logger) *DocumentCheckWorker {
	return &DocumentCheckWorker{
		storage:  storage,
		interval: interval,
		logger:   logger.WithField("worker", "document_check"),
	}
}

// CheckReport is the outcome of one pass over all users.
type CheckReport struct {
	// Checked is the number of users whose documents were read.
	Checked int

	// Corrupt lists the users with at least one unparsable document.
	Corrupt []string

	// Failed lists the users whose documents could not be read for any other
	// reason, such as an I/O error or a missing profile document.
	Failed []string
}

func (d *DocumentCheckWorker) Run(ctx context.Context) {
	d.logger.Info().Dur("interval", d.interval).Msg("document check worker started")

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			d.logger.Info().Msg("document check worker stopped")
			return
		case <-ticker.C:
			report, err := d.Check(ctx)
			if err != nil {
				d.logger.Err(err).Str("func", "*DocumentCheckWorker.Run").Msg("document check failed")
				continue
			}
			d.logger.Debug().
				Int("checked", report.Checked).
				Int("corrupt", len(report.Corrupt)).
				Int("failed", len(report.Failed)).
				Msg("document check finished")
		}
	}
}

// Check reads the profile and notes of every registered user once.
func (d *DocumentCheckWorker) Check(ctx context.Context) (CheckReport, error) {
	var report CheckReport

	usernames, err := d.storage.ListUsers(ctx)
	if err != nil {
		return report, err
	}

	for _, username := range usernames {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}

		err := d.storage.View(ctx, []string{username}, func(tx store.DocumentTx) error {
			if _, err := tx.Profile(username); err != nil {
				return err
			}
			_, err := tx.Notes(username)
			return err
		})

		switch {
		case err == nil:
			report.Checked++
		case errors.Is(err, store.ErrUserNotFound):
			// deleted after ListUsers
		case errors.Is(err, store.ErrCorruptDocument):
			report.Checked++
			report.Corrupt = append(report.Corrupt, username)
			d.logger.Warn().Err(err).Str("username", username).Msg("corrupt user document")
		default:
			report.Failed = append(report.Failed, username)
			d.logger.Err(err).Str("username", username).Msg("error reading user documents")
		}
	}

	return report, nil
}
