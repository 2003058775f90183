package services

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/ssgi/placementms/internal/app/models/dto"
)

// setIf adds key to patch only when the field was explicitly supplied.
// This is what keeps "absent" distinct from "explicit zero".
func setIf[T any](patch bson.M, key string, value *T) {
	if value != nil {
		patch[key] = *value
	}
}

// buildProfilePatch assembles the $set document for a sparse profile
// update. Basic/tenth/twelfth fields become dotted paths so sub-fields
// the caller did not touch keep their stored values. semester_details,
// when supplied, replaces the stored sequence wholesale, each element
// carrying only its explicitly set fields.
func buildProfilePatch(req *dto.UpdateProfileRequest) bson.M {
	patch := bson.M{}

	if b := req.BasicDetails; b != nil {
		setIf(patch, "basic_details.full_name", b.FullName)
		setIf(patch, "basic_details.father_name", b.FatherName)
		setIf(patch, "basic_details.mother_name", b.MotherName)
		setIf(patch, "basic_details.date_of_birth", b.DateOfBirth)
		setIf(patch, "basic_details.branch", b.Branch)
	}

	addBoardPatch(patch, "tenth_details", req.TenthDetails)
	addBoardPatch(patch, "twelfth_details", req.TwelfthDetails)

	if req.SemesterDetails != nil {
		semesters := make([]bson.M, 0, len(req.SemesterDetails))
		for _, s := range req.SemesterDetails {
			entry := bson.M{}
			setIf(entry, "semester", s.Semester)
			setIf(entry, "cgpa", s.CGPA)
			setIf(entry, "no_backlogs", s.NoBacklogs)
			setIf(entry, "marksheet_url", s.MarksheetURL)
			semesters = append(semesters, entry)
		}
		patch["semester_details"] = semesters
	}

	return patch
}

func addBoardPatch(patch bson.M, prefix string, b *dto.BoardDetailsUpdate) {
	if b == nil {
		return
	}
	setIf(patch, prefix+".school_location", b.SchoolLocation)
	setIf(patch, prefix+".percentage", b.Percentage)
	setIf(patch, prefix+".board", b.Board)
	setIf(patch, prefix+".marksheet_url", b.MarksheetURL)
	setIf(patch, prefix+".year_of_passing", b.YearOfPassing)
}

// buildMarksheetPatch assembles the single $set document for uploaded
// marksheet URLs. Semester URLs are keyed positionally: the URL at
// index i lands on the stored semester element at index i.
func buildMarksheetPatch(tenthURL, twelfthURL string, semesterURLs []string) bson.M {
	patch := bson.M{
		"tenth_details.marksheet_url":   tenthURL,
		"twelfth_details.marksheet_url": twelfthURL,
	}
	for i, url := range semesterURLs {
		patch[fmt.Sprintf("semester_details.%d.marksheet_url", i)] = url
	}
	return patch
}
