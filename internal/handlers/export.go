package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/Yashwanthgowda1/backend-server/internal/repository"
)

type ExportHandler struct {
	Repo *repository.AttendanceRepository
}

func NewExportHandler(repo *repository.AttendanceRepository) *ExportHandler {
	return &ExportHandler{Repo: repo}
}

// Export writes every attendance record into an xlsx workbook.
func (h *ExportHandler) Export(c *gin.Context) {
	records, err := h.Repo.ListFiltered(c.Request.Context(), repository.Filter{})
	if err != nil {
		respondError(c, err)
		return
	}

	file := excelize.NewFile()
	sheet := file.GetSheetName(file.GetActiveSheetIndex())

	headers := []string{"No", "Employee ID", "Name", "Type", "Date", "Recorded At"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = file.SetCellValue(sheet, cell, header)
	}

	for index, record := range records {
		row := index + 2
		_ = file.SetCellValue(sheet, fmt.Sprintf("A%d", row), index+1)
		_ = file.SetCellValue(sheet, fmt.Sprintf("B%d", row), record.EmpID)
		_ = file.SetCellValue(sheet, fmt.Sprintf("C%d", row), record.EmpName)
		_ = file.SetCellValue(sheet, fmt.Sprintf("D%d", row), record.AttendanceType)
		_ = file.SetCellValue(sheet, fmt.Sprintf("E%d", row), record.Date)
		_ = file.SetCellValue(sheet, fmt.Sprintf("F%d", row), record.Timestamp.Format("2006-01-02 15:04:05"))
	}

	buffer, err := file.WriteToBuffer()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build export"})
		return
	}

	filename := fmt.Sprintf("attendance-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	_, _ = c.Writer.Write(buffer.Bytes())
}
