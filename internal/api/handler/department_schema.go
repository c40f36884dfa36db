package handler

// createDepartmentRequest is the mass-assignment allow-list for department
// creation. "department" is the unit label inside the building.
type createDepartmentRequest struct {
	Type      string `json:"type"       validate:"required"`
	Location  string `json:"location"   validate:"required"`
	District  string `json:"district"   validate:"required"`
	Floor     string `json:"floor"`
	Unit      string `json:"department"`
	FlatRooms int    `json:"flat_rooms"`
}

// updateDepartmentRequest is the allow-list for updates; absent fields are
// left untouched.
type updateDepartmentRequest struct {
	Type      *string `json:"type"`
	Location  *string `json:"location"`
	District  *string `json:"district"`
	Floor     *string `json:"floor"`
	Unit      *string `json:"department"`
	FlatRooms *int    `json:"flat_rooms"`
	Removed   *bool   `json:"removed"`
}
