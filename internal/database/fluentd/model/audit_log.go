package model

// AuditLog 後台 catalog 異動稽核（誰、對哪個 entity、做了什麼）
type AuditLog struct {
	RequestID string `bson:"request_id,omitempty" json:"request_id,omitempty"`
	ActorID   string `bson:"actor_id,omitempty" json:"actor_id,omitempty"`
	StoreID   string `bson:"store_id,omitempty" json:"store_id,omitempty"`
	Entity    string `bson:"entity" json:"entity"`
	EntityID  string `bson:"entity_id,omitempty" json:"entity_id,omitempty"`
	Action    string `bson:"action" json:"action"`
	Detail    string `bson:"detail,omitempty" json:"detail,omitempty"`
	Version   string `bson:"version,omitempty" json:"version,omitempty"`
	LoggedAt  string `bson:"logged_at" json:"logged_at"`
}
