package notify

import "log"

// Sender delivers a single order notification.
type Sender interface {
	SendOrderNotification(OrderSummary) error
}

// Dispatcher decouples order creation from notification delivery. Events
// are queued on a buffered channel and handled by one worker; a full queue
// drops the event. The order itself is never failed or rolled back by
// anything that happens here.
type Dispatcher struct {
	sender Sender
	queue  chan OrderSummary
}

func NewDispatcher(sender Sender) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		queue:  make(chan OrderSummary, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.sender.SendOrderNotification(ev); err != nil {
			log.Println("order notification error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev OrderSummary) {
	select {
	case d.queue <- ev:
		// queued
	default:
		log.Println("notification queue full, dropping event for order", ev.OrderID)
	}
}
