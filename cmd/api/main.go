package main

import (
	"fmt"
	"net/http"

	"github.com/shiftline/timeclock-backend-go/internal/config"
	appHTTP "github.com/shiftline/timeclock-backend-go/internal/handler/http"
	"github.com/shiftline/timeclock-backend-go/internal/pkg/database"
	"github.com/shiftline/timeclock-backend-go/internal/repository/postgresql"
	attendanceService "github.com/shiftline/timeclock-backend-go/internal/service/attendance"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)

	router := appHTTP.NewRouter(attendanceHandler, cfg.App.Env)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
