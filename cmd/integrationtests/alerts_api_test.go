package integrationtests

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	model "freight-auction/internal/models"
	"freight-auction/internal/notifier"
	"freight-auction/internal/scheduler"
)

// Trigger CRUD over the API.
func TestTriggerAPI(t *testing.T) {
	router, _ := SetupTestRouter()

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/carriers/c1/triggers", map[string]any{
		"kind":   "new_route",
		"config": map[string]any{"stateTags": []string{"TX"}},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	triggerID := Data(t, resp)["trigger_id"].(string)
	require.NotEmpty(t, triggerID)

	// Invalid config is rejected with a 400.
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/carriers/c1/triggers", map[string]any{
		"kind":   "similar_load",
		"config": map[string]any{"distanceThreshold": 9000},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Partial update flips the active flag only.
	resp, w = ExecuteRequestAndParse(t, router, http.MethodPut, "/carriers/c1/triggers/"+triggerID, map[string]any{
		"active": false,
	})
	require.Equal(t, http.StatusOK, w.Code)
	updated := Data(t, resp)
	require.Equal(t, false, updated["active"])
	require.Equal(t, "new_route", updated["kind"])

	// Another carrier cannot touch it.
	_, w = ExecuteRequestAndParse(t, router, http.MethodDelete, "/carriers/c2/triggers/"+triggerID, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	_, w = ExecuteRequestAndParse(t, router, http.MethodDelete, "/carriers/c1/triggers/"+triggerID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/carriers/c1/triggers", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, resp["data"].([]any))
}

// The trigger pipeline end to end: configure a trigger over the API,
// run an evaluation cycle, read and mark the resulting notification.
func TestTriggerToNotificationFlow(t *testing.T) {
	router, repo := SetupTestRouterWithAuctions(OpenAuction("BN-1", 5))

	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/carriers/c1/triggers", map[string]any{
		"kind":   "new_route",
		"config": map[string]any{"stateTags": []string{"TX"}},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	evaluator := notifier.NewEvaluator(repo, repo, notifier.NewDispatcher(repo), 2)
	sched := scheduler.New(evaluator, repo, time.Minute, 30*time.Second)

	report := sched.RunCycle(context.Background())
	require.Equal(t, 1, report.ByKind[model.TriggerNewRoute].Sent)

	// A second cycle inside the cooldown is silent.
	report = sched.RunCycle(context.Background())
	require.Zero(t, report.ByKind[model.TriggerNewRoute].Sent)

	resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/carriers/c1/notifications", nil)
	require.Equal(t, http.StatusOK, w.Code)
	notes := resp["data"].([]any)
	require.Len(t, notes, 1)

	note := notes[0].(map[string]any)
	require.Equal(t, "new_route", note["kind"])
	require.Equal(t, "BN-1", note["bid_number"])
	require.Equal(t, false, note["read"])

	notificationID := note["notification_id"].(string)
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost,
		"/carriers/c1/notifications/"+notificationID+"/read", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/carriers/c1/notifications", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, resp["data"].([]any)[0].(map[string]any)["read"])
}

// A new lowest bid raises an operations notification.
func TestNewLowestBidNotifiesOperations(t *testing.T) {
	router, repo := SetupTestRouterWithAuctions(OpenAuction("BN-1", 5))

	for _, bid := range []map[string]any{
		{"bid_number": "BN-1", "carrier_id": "c1", "amount_cents": 50000},
		{"bid_number": "BN-1", "carrier_id": "c2", "amount_cents": 45000},
	} {
		_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/bids", bid)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	notes, err := repo.ListNotificationsForCarrier("operations")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	require.Equal(t, model.NotifyNewLowestBid, notes[0].Kind)
}
