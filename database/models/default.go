package models

import (
	"github.com/kamva/mgm/v3"
)

// DefaultModel replaces mgm's ObjectID-keyed base for collections keyed by a
// Discord snowflake, so lookups can use the snowflake string as _id directly.
type DefaultModel struct {
	ID             string `json:"id" bson:"_id,omitempty"`
	mgm.DateFields `bson:",inline"`
}

func (m *DefaultModel) PrepareID(id interface{}) (interface{}, error) {
	return id, nil
}

func (m *DefaultModel) GetID() interface{} {
	return m.ID
}

func (m *DefaultModel) SetID(id interface{}) {
	m.ID = id.(string)
}
