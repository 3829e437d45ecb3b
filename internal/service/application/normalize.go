package application

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/heartmarshall/gis-admissions-backend/internal/domain"
)

var errInvalidDate = errors.New("must be a date (YYYY-MM-DD) or an RFC 3339 timestamp")

// MapOptions tunes MapApplicationDataToColumns.
type MapOptions struct {
	// BirthDateFallback stores today's date when no birth date is given.
	BirthDateFallback bool
	Now               time.Time
}

// BuildApplicationData exposes the profile columns of a row. Missing arrays
// become empty slices and dates are formatted as YYYY-MM-DD.
func BuildApplicationData(app domain.Application) domain.ApplicationData {
	c := app.ApplicationColumns
	return domain.ApplicationData{
		FirstName:                             c.FirstName,
		LastName:                              c.LastName,
		BirthDate:                             formatDate(c.BirthDate),
		WhoAreYou:                             c.WhoAreYou,
		PhoneNumbers:                          orEmpty(c.PhoneNumbers),
		Country:                               c.Country,
		City:                                  c.City,
		WhereAreYou:                           c.WhereAreYou,
		HasIDCardOrPassport:                   c.HasIDCardOrPassport,
		IDCardOrPassportOrReceipt:             orEmpty(c.IDCardOrPassportOrReceipt),
		HighSchoolOver:                        c.HighSchoolOver,
		HighSchoolGceOLProbatoireDate:         formatDate(c.HighSchoolGceOLProbatoireDate),
		HighSchoolGceOLProbatoireCertificates: orEmpty(c.HighSchoolGceOLProbatoireCertificates),
		HighSchoolGceALBACDate:                formatDate(c.HighSchoolGceALBACDate),
		HighSchoolGceALBACCertificates:        orEmpty(c.HighSchoolGceALBACCertificates),
		UniversityStudent:                     c.UniversityStudent,
		UniversityStartDate:                   formatDate(c.UniversityStartDate),
		UniversityEndDate:                     formatDate(c.UniversityEndDate),
		UniversityCertificates:                orEmpty(c.UniversityCertificates),
	}
}

// MapApplicationDataToColumns is the inverse of BuildApplicationData. Every
// unparseable date is reported as a field error of the returned
// *domain.ValidationError.
func MapApplicationDataToColumns(data domain.ApplicationData, opts MapOptions) (domain.ApplicationColumns, error) {
	var errs []domain.FieldError
	date := func(field string, v *string) *time.Time {
		t, err := parseDate(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "data." + field, Message: err.Error()})
		}
		return t
	}

	cols := domain.ApplicationColumns{
		FirstName:                             strings.TrimSpace(data.FirstName),
		LastName:                              strings.TrimSpace(data.LastName),
		BirthDate:                             date("birthDate", data.BirthDate),
		WhoAreYou:                             trimOrNil(data.WhoAreYou),
		PhoneNumbers:                          orEmpty(data.PhoneNumbers),
		Country:                               strings.TrimSpace(data.Country),
		City:                                  strings.TrimSpace(data.City),
		WhereAreYou:                           trimOrNil(data.WhereAreYou),
		HasIDCardOrPassport:                   data.HasIDCardOrPassport,
		IDCardOrPassportOrReceipt:             orEmpty(data.IDCardOrPassportOrReceipt),
		HighSchoolOver:                        data.HighSchoolOver,
		HighSchoolGceOLProbatoireDate:         date("highSchoolGceOLProbatoireDate", data.HighSchoolGceOLProbatoireDate),
		HighSchoolGceOLProbatoireCertificates: orEmpty(data.HighSchoolGceOLProbatoireCertificates),
		HighSchoolGceALBACDate:                date("highSchoolGceALBACDate", data.HighSchoolGceALBACDate),
		HighSchoolGceALBACCertificates:        orEmpty(data.HighSchoolGceALBACCertificates),
		UniversityStudent:                     data.UniversityStudent,
		UniversityStartDate:                   date("universityStartDate", data.UniversityStartDate),
		UniversityEndDate:                     date("universityEndDate", data.UniversityEndDate),
		UniversityCertificates:                orEmpty(data.UniversityCertificates),
	}
	if len(errs) > 0 {
		return domain.ApplicationColumns{}, domain.NewValidationErrors(errs)
	}

	if cols.BirthDate == nil && opts.BirthDateFallback {
		now := opts.Now
		if now.IsZero() {
			now = time.Now()
		}
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		cols.BirthDate = &today
	}

	return cols, nil
}

// BuildApplicationMeta returns a copy of the reviewer annotations of a row.
func BuildApplicationMeta(row domain.ApplicationRow) domain.ApplicationMeta {
	meta := domain.ApplicationMeta{
		Status: domain.ApplicationMetaStatus{
			Invited: make(map[domain.ApplicationStatus]bool, len(row.Application.InvitedStatuses)),
		},
		DocumentStatuses: map[string]domain.DocumentStatus{},
		DocumentComments: map[string]string{},
	}
	for status, invited := range row.Application.InvitedStatuses {
		meta.Status.Invited[status] = invited
	}

	reviews := reviewsFromMeta(row.DocumentMeta)
	for url, status := range reviews.statuses {
		meta.DocumentStatuses[url] = status
	}
	for url, comment := range reviews.comments {
		meta.DocumentComments[url] = comment
	}
	return meta
}

// NormalizeApplication composes the read view of one application. A nil
// relations value yields empty child collections.
func NormalizeApplication(row domain.ApplicationRow, relations *domain.Relations) domain.NormalizedApplication {
	app := row.Application

	status := app.Status
	if status == "" {
		status = domain.ApplicationStatusDraft
	}

	out := domain.NormalizedApplication{
		ID:          app.ID,
		CreatedAt:   app.CreatedAt,
		UpdatedAt:   app.UpdatedAt,
		CreatedByID: app.CreatedByID,
		Email:       app.Email,
		Status:      status,
		Data:        BuildApplicationData(app),
		Meta:        BuildApplicationMeta(row),

		ProgramChoices: []domain.ProgramChoiceDTO{},
		Educations:     []domain.EducationDTO{},
		Documents:      []domain.DocumentDTO{},
		Phones:         []domain.PhoneDTO{},
		Consents:       []domain.ConsentDTO{},
		StatusHistory:  []domain.StatusHistoryDTO{},
	}

	if row.Owner != nil {
		out.CreatedBy = &domain.UserSummary{
			ID:    row.Owner.ID,
			Email: row.Owner.Email,
			Name:  row.Owner.Name,
			Role:  row.Owner.Role,
		}
	}

	if relations == nil {
		return out
	}

	for _, c := range relations.ProgramChoices[app.ID] {
		out.ProgramChoices = append(out.ProgramChoices, domain.ProgramChoiceDTO{
			ID:          c.ID,
			Rank:        c.Rank,
			ProgramCode: c.ProgramCode,
			Campus:      c.Campus,
			StartTerm:   c.StartTerm,
			StudyMode:   c.StudyMode,
			FundingType: c.FundingType,
		})
	}
	for _, e := range relations.Educations[app.ID] {
		out.Educations = append(out.Educations, domain.EducationDTO{
			ID:              e.ID,
			Type:            e.Type,
			SchoolName:      e.SchoolName,
			City:            e.City,
			Country:         e.Country,
			FieldOfStudy:    e.FieldOfStudy,
			StartDate:       formatDate(e.StartDate),
			EndDate:         formatDate(e.EndDate),
			CompletionDate:  formatDate(e.CompletionDate),
			Status:          e.Status,
			GPA:             e.GPA,
			CandidateNumber: e.CandidateNumber,
			SessionYear:     e.SessionYear,
		})
	}
	for _, d := range relations.Documents[app.ID] {
		out.Documents = append(out.Documents, domain.DocumentDTO{
			ID:              d.ID,
			EducationID:     d.EducationID,
			Kind:            d.Kind,
			Name:            d.Name,
			PublicURL:       d.PublicURL,
			Status:          d.Status,
			ReviewerComment: d.ReviewerComment,
		})
	}
	for _, p := range relations.Phones[app.ID] {
		out.Phones = append(out.Phones, domain.PhoneDTO{
			ID:           p.ID,
			PhoneNumber:  p.PhoneNumber,
			WhatsappCall: p.WhatsappCall,
			NormalCall:   p.NormalCall,
			Kind:         p.Kind,
		})
	}
	for _, c := range relations.Consents[app.ID] {
		out.Consents = append(out.Consents, domain.ConsentDTO{
			ID:          c.ID,
			ConsentType: c.ConsentType,
			Value:       c.Value,
			GrantedAt:   c.GrantedAt,
			Version:     c.Version,
		})
	}
	for _, h := range relations.StatusHistory[app.ID] {
		out.StatusHistory = append(out.StatusHistory, domain.StatusHistoryDTO{
			ID:          h.ID,
			Status:      h.Status,
			ChangedAt:   h.ChangedAt,
			ChangedByID: h.ChangedByID,
			Note:        h.Note,
		})
	}

	return out
}

// parseDate accepts a calendar date or an RFC 3339 timestamp and keeps the
// date part. Nil and blank input yield nil.
func parseDate(v *string) (*time.Time, error) {
	if v == nil {
		return nil, nil
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return nil, nil
	}

	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		ts, tsErr := time.Parse(time.RFC3339, s)
		if tsErr != nil {
			return nil, errInvalidDate
		}
		t = time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
	}
	return &t, nil
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.DateOnly)
	return &s
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// groupKey returns the value an application is grouped by in Search.
func groupKey(app domain.NormalizedApplication, groupBy string) string {
	switch groupBy {
	case GroupByStatus:
		return app.Status.String()
	case GroupByCountry:
		return app.Data.Country
	case GroupByCity:
		return app.Data.City
	case GroupByWhoAreYou:
		if app.Data.WhoAreYou != nil {
			return *app.Data.WhoAreYou
		}
		return ""
	}
	return ""
}

func wrapOp(op string, err error) error {
	return fmt.Errorf("application.%s: %w", op, err)
}
