package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/service"
	"github.com/MKhiriev/go-contact-keeper/internal/workers"
	"github.com/MKhiriev/go-contact-keeper/models"
)

type App struct {
	syncService service.ContactSyncService
	syncJob     service.ContactSyncJob
	workers     *workers.Workers

	out    io.Writer
	logger *logger.Logger
}

// NewApp binds the client services to out. The sync job is registered as the
// only background worker.
func NewApp(services *service.ClientServices, out io.Writer, logger *logger.Logger) *App {
	return &App{
		syncService: services.SyncService,
		syncJob:     services.SyncJob,
		workers:     workers.NewWorkers(services.SyncJob),
		out:         out,
		logger:      logger,
	}
}

func (a *App) Enroll(ctx context.Context) error {
	if err := a.syncService.Enroll(ctx); err != nil {
		return err
	}

	contacts, err := a.syncService.Contacts(ctx)
	if err != nil {
		return err
	}

	a.printf("%s %s\n", titleStyle.Render("enrolled"), helpStyle.Render(fmt.Sprintf("%d contacts imported", len(contacts))))
	return nil
}

func (a *App) List(ctx context.Context) error {
	contacts, err := a.syncService.Contacts(ctx)
	if err != nil {
		return err
	}

	a.printf("%s\n", renderContacts(contacts))
	return nil
}

func (a *App) Show(ctx context.Context, localID int64) error {
	c, err := a.syncService.Contact(ctx, localID)
	if err != nil {
		return err
	}

	a.printf("%s\n", renderContact(c))
	return nil
}

func (a *App) Add(ctx context.Context, fields ContactFields) error {
	var c models.Contact
	if err := fields.Apply(&c); err != nil {
		return err
	}

	created, err := a.syncService.Create(ctx, c)
	if err != nil {
		return err
	}

	a.printf("%s\n", renderContact(created))
	return nil
}

// Edit applies fields on top of the stored contact.
func (a *App) Edit(ctx context.Context, localID int64, fields ContactFields) error {
	c, err := a.syncService.Contact(ctx, localID)
	if err != nil {
		return err
	}
	if err = fields.Apply(&c); err != nil {
		return err
	}

	updated, err := a.syncService.Update(ctx, c)
	if err != nil {
		return err
	}

	a.printf("%s\n", renderContact(updated))
	return nil
}

func (a *App) Remove(ctx context.Context, localID int64) error {
	c, err := a.syncService.Contact(ctx, localID)
	if err != nil {
		return err
	}

	if err = a.syncService.Delete(ctx, c); err != nil {
		return err
	}

	a.printf("%s %s\n", titleStyle.Render("removed"), fullName(c))
	return nil
}

// Sync runs one reconciliation pass. A partial failure is printed and
// returned so the process exits non-zero.
func (a *App) Sync(ctx context.Context) error {
	report, err := a.syncService.SyncAll(ctx)
	if errors.Is(err, service.ErrNoIdentity) {
		return ErrNotEnrolled
	}
	if err != nil && !errors.Is(err, service.ErrSyncIncomplete) {
		return err
	}

	a.printf("%s\n", renderReport(report))
	return err
}

// Watch runs a pass right away, then leaves the sync job running until ctx
// is cancelled.
func (a *App) Watch(ctx context.Context) error {
	enrolled, err := a.syncService.HasIdentity(ctx)
	if err != nil {
		return err
	}
	if !enrolled {
		return ErrNotEnrolled
	}

	if err = a.Sync(ctx); err != nil && !errors.Is(err, service.ErrSyncIncomplete) {
		return err
	}

	interval := a.syncJob.Interval()
	a.logger.Info().Dur("interval", interval).Msg("starting background sync")
	a.printf("%s\n", helpStyle.Render(fmt.Sprintf("syncing every %s in the background, press Ctrl+C to stop", interval)))

	a.workers.Start(ctx)
	<-ctx.Done()
	a.workers.Stop()

	a.logger.Info().Msg("background sync stopped")
	return nil
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
