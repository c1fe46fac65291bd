package models

import (
    "database/sql"
    "time"
)

// Модели реляционных представлений (vw_*). Структура полей повторяет
// колонки представлений; теги db — для sqlx.

type UserAuthentication struct {
    UserID        int    `db:"userid" json:"userid"`
    Email         string `db:"email" json:"email"`
    Name          string `db:"name" json:"name"`
    Password      string `db:"password" json:"-"`
    UserTypeID    int    `db:"usertypeid" json:"usertypeid"`
    IsActive      bool   `db:"isactive" json:"isactive"`
    UserTypeLabel string `db:"user_type_label" json:"user_type_label"`
}

type Plan struct {
    PlanID       int     `db:"planid" json:"planid"`
    Name         string  `db:"name" json:"name"`
    MonthlyPrice float64 `db:"monthlyprice" json:"monthlyprice"`
    Access24h    bool    `db:"access24h" json:"access24h"`
}

type PlanDetails struct {
    PlanID       int            `db:"planid" json:"planid"`
    Name         string         `db:"name" json:"name"`
    MonthlyPrice float64        `db:"monthlyprice" json:"monthlyprice"`
    Access24h    bool           `db:"access24h" json:"access24h"`
    Description  sql.NullString `db:"description" json:"description"`
    IsActive     bool           `db:"isactive" json:"isactive"`
}

type MemberStatsMonth struct {
    CheckinCount  int             `db:"checkin_count" json:"checkin_count"`
    ClassBookings int             `db:"class_bookings" json:"class_bookings"`
    TotalHours    float64         `db:"total_hours" json:"total_hours"`
    NextPayment   sql.NullTime    `db:"next_payment" json:"next_payment"`
    PaymentPrice  sql.NullFloat64 `db:"payment_price" json:"payment_price"`
    MemberID      int             `db:"memberid" json:"memberid"`
    UserID        int             `db:"userid" json:"userid"`
}

type MemberScheduleClass struct {
    ClassName      string    `db:"class_name" json:"class_name"`
    Date           time.Time `db:"date" json:"date"`
    StartTime      string    `db:"starttime" json:"starttime"`
    EndTime        string    `db:"endtime" json:"endtime"`
    Room           string    `db:"room" json:"room"`
    InstructorName string    `db:"instructor_name" json:"instructor_name"`
    UserID         int       `db:"userid" json:"userid"`
}

type MemberAvailableClass struct {
    ClassScheduleID int       `db:"classscheduleid" json:"classscheduleid"`
    ClassName       string    `db:"class_name" json:"class_name"`
    Date            time.Time `db:"date" json:"date"`
    StartTime       string    `db:"starttime" json:"starttime"`
    EndTime         string    `db:"endtime" json:"endtime"`
    Room            string    `db:"room" json:"room"`
    InstructorName  string    `db:"instructor_name" json:"instructor_name"`
    AvailableSpots  int       `db:"available_spots" json:"available_spots"`
}

type MemberAccountDetails struct {
    MemberID         int             `db:"memberid" json:"memberid"`
    Name             string          `db:"name" json:"name"`
    NIF              string          `db:"nif" json:"nif"`
    Email            string          `db:"email" json:"email"`
    Phone            string          `db:"phone" json:"phone"`
    IBAN             string          `db:"iban" json:"iban"`
    BirthDate        time.Time       `db:"birthdate" json:"birthdate"`
    Gender           string          `db:"gender" json:"gender"`
    Address          string          `db:"address" json:"address"`
    City             string          `db:"city" json:"city"`
    PostalCode       string          `db:"postalcode" json:"postalcode"`
    RegistrationDate time.Time       `db:"registrationdate" json:"registrationdate"`
    StartDate        sql.NullTime    `db:"startdate" json:"startdate"`
    EndDate          sql.NullTime    `db:"enddate" json:"enddate"`
    NextPaymentDate  sql.NullTime    `db:"next_payment_date" json:"next_payment_date"`
    PlanName         sql.NullString  `db:"plan_name" json:"plan_name"`
    MonthlyPrice     sql.NullFloat64 `db:"monthlyprice" json:"monthlyprice"`
    Access24h        sql.NullBool    `db:"access24h" json:"access24h"`
    UserID           int             `db:"userid" json:"userid"`
}

type MemberPayment struct {
    PaymentID     int             `db:"paymentid" json:"paymentid"`
    PaymentDate   time.Time       `db:"payment_date" json:"payment_date"`
    PaymentAmount float64         `db:"payment_amount" json:"payment_amount"`
    PaymentMethod sql.NullString  `db:"paymentmethod" json:"paymentmethod"`
    PaymentStatus string          `db:"payment_status" json:"payment_status"`
    PaidDate      sql.NullTime    `db:"paymentdate" json:"paymentdate"`
    MemberID      int             `db:"memberid" json:"memberid"`
    UserID        int             `db:"userid" json:"userid"`
}

type MemberCheckin struct {
    CheckinID         int             `db:"checkinid" json:"checkinid"`
    CheckinDate       time.Time       `db:"checkin_date" json:"checkin_date"`
    EntranceTime      string          `db:"entrancetime" json:"entrancetime"`
    ExitTime          sql.NullString  `db:"exittime" json:"exittime"`
    DurationHours     sql.NullFloat64 `db:"duration_hours" json:"duration_hours"`
    DurationFormatted sql.NullString  `db:"duration_formatted" json:"duration_formatted"`
    MemberID          int             `db:"memberid" json:"memberid"`
    UserID            int             `db:"userid" json:"userid"`
}

type InstructorInfo struct {
    InstructorID int    `db:"instructorid" json:"instructorid"`
    Name         string `db:"name" json:"name"`
    NIF          string `db:"nif" json:"nif"`
    Email        string `db:"email" json:"email"`
    Phone        string `db:"phone" json:"phone"`
    IsActive     bool   `db:"isactive" json:"isactive"`
    UserID       int    `db:"userid" json:"userid"`
}

type InstructorClass struct {
    ClassID         int    `db:"classid" json:"classid"`
    Name            string `db:"name" json:"name"`
    Room            string `db:"room" json:"room"`
    Capacity        int    `db:"capacity" json:"capacity"`
    DurationMinutes int    `db:"duration_minutes" json:"duration_minutes"`
    InstructorID    int    `db:"instructorid" json:"instructorid"`
    UserID          int    `db:"userid" json:"userid"`
}

type ClassSchedule struct {
    ClassScheduleID int       `db:"classscheduleid" json:"classscheduleid"`
    Name            string    `db:"name" json:"name"`
    Date            time.Time `db:"date" json:"date"`
    StartTime       string    `db:"starttime" json:"starttime"`
    EndTime         string    `db:"endtime" json:"endtime"`
    MaxParticipants int       `db:"maxparticipants" json:"maxparticipants"`
    Room            string    `db:"room" json:"room"`
    InstructorID    int       `db:"instructorid" json:"instructorid"`
    UserID          int       `db:"userid" json:"userid"`
}

type DashboardStats struct {
    TotalMembers      int `db:"total_members" json:"total_members"`
    TotalInstructors  int `db:"total_instructors" json:"total_instructors"`
    ActiveMemberships int `db:"active_memberships" json:"active_memberships"`
    TodayCheckins     int `db:"today_checkins" json:"today_checkins"`
}

type MemberSummary struct {
    MemberID         int            `db:"memberid" json:"memberid"`
    Name             string         `db:"name" json:"name"`
    Email            string         `db:"email" json:"email"`
    Phone            string         `db:"phone" json:"phone"`
    RegistrationDate time.Time      `db:"registrationdate" json:"registrationdate"`
    IsActive         bool           `db:"isactive" json:"isactive"`
    StartDate        sql.NullTime   `db:"startdate" json:"startdate"`
    EndDate          sql.NullTime   `db:"enddate" json:"enddate"`
    PlanName         sql.NullString `db:"plan_name" json:"plan_name"`
}

type ClassSummary struct {
    ClassScheduleID int       `db:"classscheduleid" json:"classscheduleid"`
    Name            string    `db:"name" json:"name"`
    InstructorName  string    `db:"instructor_name" json:"instructor_name"`
    Date            time.Time `db:"date" json:"date"`
    StartTime       string    `db:"starttime" json:"starttime"`
    EndTime         string    `db:"endtime" json:"endtime"`
    Room            string    `db:"room" json:"room"`
    MaxParticipants int       `db:"maxparticipants" json:"maxparticipants"`
}

type CheckinSummary struct {
    CheckinID    int            `db:"checkinid" json:"checkinid"`
    Name         string         `db:"name" json:"name"`
    Date         time.Time      `db:"date" json:"date"`
    EntranceTime string         `db:"entrancetime" json:"entrancetime"`
    ExitTime     sql.NullString `db:"exittime" json:"exittime"`
}

type Machine struct {
    MachineID        int            `db:"machineid" json:"machineid"`
    Name             string         `db:"name" json:"name"`
    Type             string         `db:"type" json:"type"`
    Manufacturer     string         `db:"manufacturer" json:"manufacturer"`
    Model            string         `db:"model" json:"model"`
    Status           string         `db:"status" json:"status"`
    InstallationDate time.Time      `db:"installationdate" json:"installationdate"`
    MaintenanceDate  sql.NullTime   `db:"maintenancedate" json:"maintenancedate"`
}

type Payment struct {
    PaymentID     int            `db:"paymentid" json:"paymentid"`
    MemberName    string         `db:"member_name" json:"member_name"`
    PlanName      string         `db:"plan_name" json:"plan_name"`
    Amount        float64        `db:"amount" json:"amount"`
    DueDate       time.Time      `db:"duedate" json:"duedate"`
    PaymentDate   sql.NullTime   `db:"paymentdate" json:"paymentdate"`
    IsPayed       bool           `db:"ispayed" json:"ispayed"`
    PaymentMethod sql.NullString `db:"paymentmethod" json:"paymentmethod"`
}
