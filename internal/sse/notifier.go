package sse

import (
	"time"

	"github.com/GTDGit/fas_dashboard/internal/models"
	"github.com/GTDGit/fas_dashboard/internal/store"
)

// RecordNotifier is the interface services use to emit collection changes.
type RecordNotifier interface {
	NotifyProductCreated(p *models.Product)
	NotifyProductDeleted(p *models.Product)
	NotifyScenarioCreated(s *models.Scenario)
	NotifyScenarioDeleted(s *models.Scenario)
}

// HubNotifier implements RecordNotifier using the SSE Hub.
type HubNotifier struct {
	hub *Hub
	now func() time.Time
}

// NewHubNotifier creates a notifier backed by the given Hub.
func NewHubNotifier(hub *Hub) *HubNotifier {
	return &HubNotifier{hub: hub, now: time.Now}
}

func (n *HubNotifier) NotifyProductCreated(p *models.Product) {
	n.broadcast(productEvent(EventProductCreated, p))
}

func (n *HubNotifier) NotifyProductDeleted(p *models.Product) {
	n.broadcast(productEvent(EventProductDeleted, p))
}

func (n *HubNotifier) NotifyScenarioCreated(s *models.Scenario) {
	n.broadcast(scenarioEvent(EventScenarioCreated, s))
}

func (n *HubNotifier) NotifyScenarioDeleted(s *models.Scenario) {
	n.broadcast(scenarioEvent(EventScenarioDeleted, s))
}

func (n *HubNotifier) broadcast(e *RecordEvent) {
	if n.hub.ClientCount() == 0 {
		return
	}
	e.Timestamp = n.now()
	n.hub.Broadcast(e)
}

func productEvent(eventType EventType, p *models.Product) *RecordEvent {
	return &RecordEvent{
		Event:      eventType,
		Collection: store.Products,
		ID:         p.ID,
		Reference:  p.Reference,
		Label:      p.Name,
		Status:     string(p.Status),
	}
}

func scenarioEvent(eventType EventType, s *models.Scenario) *RecordEvent {
	return &RecordEvent{
		Event:      eventType,
		Collection: store.Scenarios,
		ID:         s.ID,
		Reference:  s.Reference,
		Label:      s.Title,
		Status:     string(s.Status),
	}
}

// NopNotifier is a no-op implementation for when SSE is not needed.
type NopNotifier struct{}

func (NopNotifier) NotifyProductCreated(*models.Product)   {}
func (NopNotifier) NotifyProductDeleted(*models.Product)   {}
func (NopNotifier) NotifyScenarioCreated(*models.Scenario) {}
func (NopNotifier) NotifyScenarioDeleted(*models.Scenario) {}
