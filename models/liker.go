package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// LikerIdentity is either a registered account or a free-text guest name.
// Two guests entering the same name collide on purpose; that is the
// documented behavior, not an accident of an untyped field.
type LikerIdentity struct {
	accountID primitive.ObjectID
	guestName string
}

func RegisteredLiker(id primitive.ObjectID) LikerIdentity {
	return LikerIdentity{accountID: id}
}

func GuestLiker(name string) LikerIdentity {
	return LikerIdentity{guestName: name}
}

func (l LikerIdentity) IsRegistered() bool {
	return !l.accountID.IsZero()
}

func (l LikerIdentity) IsZero() bool {
	return l.accountID.IsZero() && l.guestName == ""
}

// Key is the value stored in a media item's likes list: the account id in
// hex for registered users, the raw name for guests.
func (l LikerIdentity) Key() string {
	if l.IsRegistered() {
		return l.accountID.Hex()
	}
	return l.guestName
}
