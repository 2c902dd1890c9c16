package widgets

import (
	"github.com/google/uuid"

	"github.com/voltbench/widgets/params"
)

// MotorMessageType is the single message type the motor widget posts.
const MotorMessageType = "update-motor-params"

// MotorMessage mirrors the update-motor-params payload posted to the host on
// every parameter change. Delivery is fire-and-forget: no reply is expected
// and messages are safe to drop.
type MotorMessage struct {
	Type          string
	Widget        uuid.UUID
	MagneticField float64
	Voltage       float64
	Loops         int
	Speed         float64
	Running       bool
}

// NewMotorMessage builds the message for the current motor parameters.
func NewMotorMessage(widget uuid.UUID, m params.Motor) MotorMessage {
	return MotorMessage{
		Type:          MotorMessageType,
		Widget:        widget,
		MagneticField: m.MagneticField,
		Voltage:       m.Voltage,
		Loops:         m.Loops,
		Speed:         m.Speed(),
		Running:       m.Running,
	}
}

// PostLatest writes m to ch without ever blocking, dropping older queued
// messages if the buffer is full. The most recent parameters win. ch must
// be buffered.
func PostLatest(ch chan MotorMessage, m MotorMessage) {
	for {
		select {
		case ch <- m:
			return
		default:
			select {
			case <-ch:
			default:
			}
		}
	}
}
