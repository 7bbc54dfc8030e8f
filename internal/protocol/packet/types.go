package packet

import "fmt"

// Type identifies the payload of a packet.
type Type uint32

const (
	TypeServerChallenge          Type = 1
	TypeClientChallenge          Type = 2
	TypePushBlock                Type = 3
	TypePushTransactions         Type = 9
	TypePushPartialTransactions  Type = 500
	TypePushDetachedCosignatures Type = 501
	TypeNodeDiscoveryPullPing    Type = 601
	TypeTimeSyncNodeTime         Type = 700
)

var typeNames = map[Type]string{
	TypeServerChallenge:          "ServerChallenge",
	TypeClientChallenge:          "ClientChallenge",
	TypePushBlock:                "PushBlock",
	TypePushTransactions:         "PushTransactions",
	TypePushPartialTransactions:  "PushPartialTransactions",
	TypePushDetachedCosignatures: "PushDetachedCosignatures",
	TypeNodeDiscoveryPullPing:    "NodeDiscoveryPullPing",
	TypeTimeSyncNodeTime:         "TimeSyncNodeTime",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", uint32(t))
}

// IsKnown reports whether t is one of the defined packet types.
func (t Type) IsKnown() bool {
	_, ok := typeNames[t]
	return ok
}
