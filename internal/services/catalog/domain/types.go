// Package domain holds types for the course catalog
package domain

// Course is one catalog entry
type Course struct {
	Key           string `json:"key" example:"course-v1:OrgX+CS101+2021_T1"`
	Name          string `json:"name" example:"Intro to Computer Science"`
	Org           string `json:"org" example:"OrgX"`
	Run           string `json:"run" example:"2021_T1"`
	CreatedAtUnix int64  `json:"created_at_unix" example:"1725731200"`
}
