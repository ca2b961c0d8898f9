package motapi

import (
	"github.com/m04kA/SMC-GarageService/internal/domain"
)

// tokenResponse ответ token endpoint (OAuth2 client credentials)
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// motTestResult запись о пройденном MOT тесте.
// API возвращает тесты от самого свежего к самому старому.
type motTestResult struct {
	CompletedDate  string         `json:"completedDate"`
	TestResult     string         `json:"testResult"`
	ExpiryDate     string         `json:"expiryDate"`
	OdometerValue  string         `json:"odometerValue"`
	OdometerUnit   string         `json:"odometerUnit"`
	MotTestNumber  string         `json:"motTestNumber"`
	RfrAndComments []motRfrRecord `json:"rfrAndComments"`
}

// motRfrRecord замечание/причина отказа из протокола теста
type motRfrRecord struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

// vehicleWithHistory форма (a): зарегистрированный автомобиль с историей MOT
type vehicleWithHistory struct {
	Registration    string          `json:"registration"`
	Make            string          `json:"make"`
	Model           string          `json:"model"`
	FirstUsedDate   string          `json:"firstUsedDate"`
	FuelType        string          `json:"fuelType"`
	PrimaryColour   string          `json:"primaryColour"`
	ManufactureYear string          `json:"manufactureYear"`
	EngineSize      string          `json:"engineSize"`
	MotTests        []motTestResult `json:"motTests"`
}

// newRegVehicle форма (b): новый автомобиль, у которого еще нет истории MOT
type newRegVehicle struct {
	Registration     string `json:"registration"`
	Make             string `json:"make"`
	Model            string `json:"model"`
	ManufactureYear  string `json:"manufactureYear"`
	FuelType         string `json:"fuelType"`
	PrimaryColour    string `json:"primaryColour"`
	EngineSize       string `json:"engineSize"`
	MotTestDueDate   string `json:"motTestDueDate"`
	RegistrationDate string `json:"registrationDate"`
	ManufactureDate  string `json:"manufactureDate"`
}

// VehicleData нормализованный результат поиска по госномеру
type VehicleData struct {
	Registration  string
	Make          string
	Model         string
	Colour        string
	Year          int
	FuelType      string
	EngineSize    string
	MOTStatus     domain.MOTStatus
	MOTExpiryDate *string // YYYY-MM-DD
	LatestMileage *int
	HasMOTHistory bool
}
