package usecase

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"go-jobboard-backend/internal/domain"
)

var applicantColumns = []string{
	"APPLIED AT", "FULL NAME", "EMAIL", "PHONE", "DATE OF BIRTH", "EDUCATION",
	"EXPERIENCE", "EXPECTED SALARY", "SKILLS", "PORTFOLIO", "STATUS", "RESUME",
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// exportApplicantsExcel writes one row per application, newest first as given.
func exportApplicantsExcel(job *domain.JobPosting, apps []domain.JobApplication) ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Applicants"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, "", err
	}

	for i, header := range applicantColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	// Dark blue header with white text
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, "", err
	}
	endCell, _ := excelize.CoordinatesToCellName(len(applicantColumns), 1)
	f.SetCellStyle(sheetName, "A1", endCell, headerStyle)

	for rowIdx, app := range apps {
		for colIdx, value := range applicantRow(app) {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	for i := range applicantColumns {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, 20)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to write Excel file: %w", err)
	}

	slug := strings.Trim(unsafeFilenameChars.ReplaceAllString(strings.ToLower(job.Title), "_"), "_")
	if slug == "" {
		slug = "job"
	}
	filename := fmt.Sprintf("applicants_%d_%s_%s.xlsx", job.ID, slug, time.Now().Format("20060102_150405"))
	return buf.Bytes(), filename, nil
}

func applicantRow(app domain.JobApplication) []interface{} {
	var dob, salary, resume interface{} = "", "", ""
	if app.DateOfBirth != nil {
		dob = app.DateOfBirth.Format("2006-01-02")
	}
	if app.ExpectedSalary != nil {
		salary = *app.ExpectedSalary
	}
	if app.ResumeFilename != nil {
		resume = *app.ResumeFilename
	}
	return []interface{}{
		app.AppliedAt.Format("2006-01-02 15:04"),
		app.FullName,
		app.Email,
		app.Phone,
		dob,
		app.Education,
		app.Experience,
		salary,
		strings.Join(app.Skills, ", "),
		app.PortfolioURL,
		strings.ToUpper(app.Status),
		resume,
	}
}
