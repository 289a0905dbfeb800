package dto

// StateRevisionResponse is returned by the state save and load endpoints:
// the opaque revision token of the blob the backend holds.
//
// swagger:model StateRevisionResponse
type StateRevisionResponse struct {
	Revision string `json:"revision" example:"3f2c9a1e"`
}
