package events

import "testing"

func TestBrokerPublishToSubscriber(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe(StoreSavedEvent)

	b.Publish(Event{Type: StoreSavedEvent, Payload: SavePayload{Path: "export.env", Entries: 2}})

	select {
	case e := <-ch:
		if e.Type != StoreSavedEvent {
			t.Errorf("got event type %q", e.Type)
		}
	default:
		t.Fatal("no event delivered")
	}
}

func TestBrokerWildcardSubscriber(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe()

	b.Publish(Event{Type: ValueEditedEvent})
	b.Publish(Event{Type: StatusMessageEvent})

	for i := 0; i < 2; i++ {
		select {
		case <-ch:
		default:
			t.Fatalf("wildcard subscriber missed event %d", i)
		}
	}
}

func TestBrokerSkipsUnrelatedTypes(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe(StoreSavedEvent)

	b.Publish(Event{Type: ValueEditedEvent})

	select {
	case e := <-ch:
		t.Fatalf("unexpected event: %v", e)
	default:
	}
}
