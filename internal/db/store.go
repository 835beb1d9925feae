package db

import (
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/Solace-Health-LLC/beacon/internal/model"
)

// Store is the persistence surface handed to the API controllers.
type Store interface {
	// users
	CreateUser(email, hashedPassword string, name *string) (int, error)
	GetUserByEmail(email string) (*model.User, error)
	GetUserByID(id int) (*model.User, error)
	UpdateUserProfile(id int, email string, name *string) error

	// devices
	CreateDevice(name string, location, department *string, createdBy int) (model.Device, error)
	GetDeviceByID(id int) (model.Device, error)
	GetDeviceByHardwareID(hardwareID string) (model.Device, error)
	IsDevicePairedByHardwareID(hardwareID string) (bool, error)
	ListDevices() ([]model.Device, error)
	UpdateDevice(id int, name, location, department *string) error
	DeleteDevice(id int) error
	AssignHardwareIDToDevice(deviceID int, hardwareID string) error
	PairDevice(id int) error

	// content
	CreateContent(c model.Content) (model.Content, error)
	GetContentByID(id int) (model.Content, error)
	ListContentForDevice(deviceID int) ([]model.Content, error)
	UpdateContent(id int, c ContentUpdate) error
	DeleteContent(id int) error

	// patient queue
	CreatePatient(deviceID, ticketNo int, displayName string, department, room *string) (model.Patient, error)
	GetPatientByID(id int) (model.Patient, error)
	ListPatientsForDevice(deviceID int) ([]model.Patient, error)
	SetPatientStatus(id int, status string) error
	DeletePatient(id int) error
}

// ContentUpdate carries the nullable patch fields for UpdateContent.
type ContentUpdate struct {
	Name         *string
	URL          *string
	Position     *int
	Active       *bool
	DurationMs   *int
	ScheduleKind *string
	SpecificDate *string
	DaysOfWeek   pq.Int64Array
	StartDate    *string
	EndDate      *string
	StartTime    *string
	EndTime      *string
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
var _ Store = (*pgStore)(nil)

func NewStore() Store {
	return &pgStore{db: DB}
}
