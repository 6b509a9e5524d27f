package flowctl

import "testing"

// S7: register channel 1 windowTarget=1024 -> planCreditGrant grants 1024
// with a credit_grant event; transport backpressure pauses further grants;
// planCreditGrant afterward grants 0 with no event.
func TestScenarioFlowBackpressure(t *testing.T) {
	c := NewController()
	id := ChannelID("1")
	c.Register(id, RegisterOptions{WindowTarget: 1024})

	grant, ev := c.PlanCreditGrant(id)
	if grant != 1024 {
		t.Fatalf("grant = %d, want 1024", grant)
	}
	if ev == nil || ev.Kind != EventCreditGrant || ev.Grant != 1024 {
		t.Fatalf("event = %+v, want credit_grant(1024)", ev)
	}

	pause := c.UpdateTransportBackpressure(true)
	if pause == nil || pause.Kind != EventFlowPause || pause.Reason != ReasonTransportBackpressure {
		t.Fatalf("pause event = %+v, want flow_pause{transport_backpressure}", pause)
	}

	grant, ev = c.PlanCreditGrant(id)
	if grant != 0 || ev != nil {
		t.Fatalf("grant, event = %d, %+v, want 0, nil", grant, ev)
	}
}

func TestApplyDataReceiptFloorsAtZero(t *testing.T) {
	c := NewController()
	id := ChannelID("1")
	c.Register(id, RegisterOptions{WindowTarget: 100, MaxWindow: 100})
	c.PlanCreditGrant(id)
	c.ApplyDataReceipt(id, 1000)
	if got := c.Outstanding(id); got != 0 {
		t.Fatalf("outstanding = %d, want 0", got)
	}
}

func TestUpdateReasonNoOpWhenUnchanged(t *testing.T) {
	c := NewController()
	if ev := c.UpdateOffline(false); ev != nil {
		t.Fatalf("expected no event for redundant update, got %+v", ev)
	}
	c.UpdateOffline(true)
	if ev := c.UpdateOffline(true); ev != nil {
		t.Fatalf("expected no event for repeated active update, got %+v", ev)
	}
	if ev := c.UpdateOffline(false); ev == nil || ev.Kind != EventFlowResume {
		t.Fatalf("expected flow_resume, got %+v", ev)
	}
}

func TestDeregisterRemovesChannel(t *testing.T) {
	c := NewController()
	id := ChannelID("1")
	c.Register(id, RegisterOptions{WindowTarget: 100})
	c.Deregister(id)
	grant, ev := c.PlanCreditGrant(id)
	if grant != 0 || ev != nil {
		t.Fatalf("grant, event = %d, %+v, want 0, nil after deregister", grant, ev)
	}
}
