package reminders

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/smk-chits/smk-chits/internal/chit"
	"github.com/smk-chits/smk-chits/internal/reports"
	"github.com/smk-chits/smk-chits/jobs"
)

type fakeDefaulterSource struct {
	view reports.DefaulterView
}

func (f *fakeDefaulterSource) Defaulters(ctx context.Context, asOf time.Time) (reports.DefaulterView, error) {
	return f.view, nil
}

type fakeSettingsSource struct {
	settings chit.Settings
}

func (f *fakeSettingsSource) Get(ctx context.Context) (chit.Settings, error) {
	return f.settings, nil
}

type enqueuedReminder struct {
	payload jobs.ReminderPayload
	delay   time.Duration
}

type fakeEnqueuer struct {
	sent []enqueuedReminder
}

func (f *fakeEnqueuer) EnqueueReminder(ctx context.Context, payload jobs.ReminderPayload, delay time.Duration) error {
	f.sent = append(f.sent, enqueuedReminder{payload: payload, delay: delay})
	return nil
}

func entry(memberID, name, phone, groupID, groupName string, outstanding float64) chit.DefaulterEntry {
	return chit.DefaulterEntry{
		Member:      chit.Member{ID: memberID, Name: name, Phone: phone},
		Group:       chit.Group{ID: groupID, Name: groupName},
		Outstanding: outstanding,
	}
}

func newReminderFixture(view reports.DefaulterView) (*Service, *fakeEnqueuer) {
	enqueuer := &fakeEnqueuer{}
	settings := &fakeSettingsSource{settings: chit.Settings{
		WhatsAppTemplateEN: "Dear {name}, {amount} pending for {group}.",
		WhatsAppTemplateTE: "ప్రియమైన {name}, {group} కు {amount} బాకీ.",
	}}
	svc := NewService(&fakeDefaulterSource{view: view}, settings, enqueuer, 2*time.Second)
	return svc, enqueuer
}

func TestSendStaggersDispatches(t *testing.T) {
	view := reports.DefaulterView{Entries: []chit.DefaulterEntry{
		entry("m1", "Anand", "9876543210", "g1", "Lakshmi 1L", 10000),
		entry("m2", "Bhavani", "9876543211", "g1", "Lakshmi 1L", 5000),
		entry("m3", "Chandra", "9876543212", "g2", "Durga 2L", 2500),
	}}
	svc, enqueuer := newReminderFixture(view)

	result, err := svc.SendDefaulterReminders(context.Background(), SendInput{})
	require.NoError(t, err)
	require.Equal(t, 3, result.Queued)
	require.Equal(t, 0, result.Skipped)

	require.Len(t, enqueuer.sent, 3)
	require.Equal(t, time.Duration(0), enqueuer.sent[0].delay)
	require.Equal(t, 2*time.Second, enqueuer.sent[1].delay)
	require.Equal(t, 4*time.Second, enqueuer.sent[2].delay)
	require.Equal(t, "Anand", enqueuer.sent[0].payload.MemberName)
	require.Equal(t, "919876543210", enqueuer.sent[0].payload.Phone)
}

func TestSendSkipsMissingPhones(t *testing.T) {
	view := reports.DefaulterView{Entries: []chit.DefaulterEntry{
		entry("m1", "Anand", "", "g1", "Lakshmi 1L", 10000),
		entry("m2", "Bhavani", "9876543211", "g1", "Lakshmi 1L", 5000),
	}}
	svc, enqueuer := newReminderFixture(view)

	result, err := svc.SendDefaulterReminders(context.Background(), SendInput{})
	require.NoError(t, err)
	require.Equal(t, 1, result.Queued)
	require.Equal(t, 1, result.Skipped)
	require.Len(t, enqueuer.sent, 1)
	require.Equal(t, time.Duration(0), enqueuer.sent[0].delay)
}

func TestSendFiltersByGroup(t *testing.T) {
	view := reports.DefaulterView{Entries: []chit.DefaulterEntry{
		entry("m1", "Anand", "9876543210", "g1", "Lakshmi 1L", 10000),
		entry("m3", "Chandra", "9876543212", "g2", "Durga 2L", 2500),
	}}
	svc, enqueuer := newReminderFixture(view)

	result, err := svc.SendDefaulterReminders(context.Background(), SendInput{GroupID: "g2"})
	require.NoError(t, err)
	require.Equal(t, 1, result.Queued)
	require.Equal(t, "Chandra", enqueuer.sent[0].payload.MemberName)
}

func TestBuildMessageFillsPlaceholders(t *testing.T) {
	msg := BuildMessage("Dear {name}, {amount} pending for {group}.",
		entry("m1", "Anand", "9876543210", "g1", "Lakshmi 1L", 100000))
	require.Equal(t, "Dear Anand, ₹1,00,000 pending for Lakshmi 1L.", msg)
}

func TestSendUsesTeluguTemplate(t *testing.T) {
	view := reports.DefaulterView{Entries: []chit.DefaulterEntry{
		entry("m1", "Anand", "9876543210", "g1", "Lakshmi 1L", 5000),
	}}
	svc, enqueuer := newReminderFixture(view)

	_, err := svc.SendDefaulterReminders(context.Background(), SendInput{Lang: "te"})
	require.NoError(t, err)
	require.Contains(t, enqueuer.sent[0].payload.Body, "బాకీ")
}
