package routes

import (
	"vetdesk/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAttendance = "/attendance"
)

func addAttendanceRoutes(rg *gin.RouterGroup, attendanceHandler *handlers.AttendanceHandler) {
	attendance := rg.Group(PathAttendance)
	{
		attendance.POST("/schedule", attendanceHandler.Schedule)
		attendance.POST("/begin", attendanceHandler.BeginMedical)
		attendance.POST("/finish", attendanceHandler.Finish)
		attendance.POST("/cancel", attendanceHandler.Cancel)
		attendance.POST("/budget", attendanceHandler.RecordBudget)
		attendance.PATCH("/step", attendanceHandler.SetStep)
		attendance.PATCH("/triage", attendanceHandler.UpdateTriage)
		attendance.PATCH("/anamnesis", attendanceHandler.UpdateAnamnesis)
		attendance.POST("/prescriptions", attendanceHandler.AddPrescription)
		attendance.PATCH("/prescriptions/:item_id", attendanceHandler.UpdatePrescription)
		attendance.DELETE("/prescriptions/:item_id", attendanceHandler.RemovePrescription)
	}
	rg.GET(PathAttendance, attendanceHandler.GetAttendance)
}
