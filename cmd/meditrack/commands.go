package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"meditrack-client/internal/app/models"
	"meditrack-client/internal/app/services/core/dashboard"
	"meditrack-client/internal/pkg/constvars"
	"meditrack-client/internal/pkg/dto/requests"
	"meditrack-client/internal/pkg/utils"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	return fs
}

func runRegister(ctx context.Context, app *application, args []string) error {
	var email, password, name string
	fs := newFlagSet("register")
	fs.StringVarP(&email, "email", "e", "", "account email")
	fs.StringVarP(&password, "password", "p", os.Getenv("MEDITRACK_PASSWORD"), "account password")
	fs.StringVarP(&name, "name", "n", "", "display name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	authResponse, err := app.Client.Auth.Register(ctx, email, password, name)
	if err != nil {
		return err
	}
	fmt.Fprintf(app.Stdout, "Registered and logged in as %s\n", describeUser(authResponse.User))
	return nil
}

func runLogin(ctx context.Context, app *application, args []string) error {
	var email, password string
	fs := newFlagSet("login")
	fs.StringVarP(&email, "email", "e", "", "account email")
	fs.StringVarP(&password, "password", "p", os.Getenv("MEDITRACK_PASSWORD"), "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	authResponse, err := app.Client.Auth.Login(ctx, email, password)
	if err != nil {
		return err
	}
	fmt.Fprintf(app.Stdout, "Logged in as %s\n", describeUser(authResponse.User))
	return nil
}

func runLogout(ctx context.Context, app *application, args []string) error {
	app.Client.Auth.Logout(ctx)
	fmt.Fprintln(app.Stdout, "Logged out")
	return nil
}

func runWhoAmI(ctx context.Context, app *application, args []string) error {
	store := app.Client.Store
	if !store.IsAuthenticated(ctx) {
		fmt.Fprintln(app.Stdout, "Not logged in")
		return nil
	}

	token, _ := store.GetToken(ctx)
	user, state := store.UserStatus(ctx)
	switch state {
	case models.UserStatePresent:
		fmt.Fprintf(app.Stdout, "User:    %s\n", describeUser(user))
		fmt.Fprintf(app.Stdout, "Role:    %s\n", user.Role)
		fmt.Fprintf(app.Stdout, "Email verified: %t\n", user.IsEmailVerified)
	case models.UserStateCorrupt:
		fmt.Fprintln(app.Stdout, "User:    stored profile is unreadable, login again to repair it")
	default:
		fmt.Fprintln(app.Stdout, "User:    unknown")
	}
	fmt.Fprintf(app.Stdout, "Token:   %s\n", utils.MaskToken(token))

	claims, err := utils.ParseTokenClaims(token)
	if err != nil {
		app.Bootstrap.Logger.Debug("access token is not a readable JWT", zap.Error(err))
		return nil
	}
	if !claims.ExpiresAt.IsZero() {
		status := "valid"
		if claims.IsExpired(app.Now()) {
			status = "expired, the next call refreshes it"
		}
		fmt.Fprintf(app.Stdout, "Expires: %s (%s)\n", claims.ExpiresAt.Local().Format(time.RFC3339), status)
	}
	return nil
}

// patientQueryFlags are shared by every command that lists patients.
type patientQueryFlags struct {
	search    string
	gender    string
	bloodType string
	ageRange  string
	page      int
	limit     int
	where     map[string]string
}

func (f *patientQueryFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.search, "search", "s", "", "match first name, last name or record number")
	fs.StringVar(&f.gender, "gender", "", "male, female, other or prefer_not_to_say")
	fs.StringVar(&f.bloodType, "blood-type", "", "A+, A-, B+, B-, AB+, AB-, O+, O- or unknown")
	fs.StringVar(&f.ageRange, "age-range", "", "under18, 18to40, 41to65 or over65")
	fs.IntVar(&f.page, "page", 1, "page to show")
	fs.IntVar(&f.limit, "limit", constvars.DefaultPatientsPerPage, "patients per page")
	fs.StringToStringVar(&f.where, "where", nil, "backend filter as key=value, repeatable")
}

func (f *patientQueryFlags) criteria() (dashboard.Criteria, error) {
	ageRange, err := dashboard.ParseAgeRange(f.ageRange)
	if err != nil {
		return dashboard.Criteria{}, err
	}
	return dashboard.Criteria{
		Search:    f.search,
		Gender:    models.Gender(f.gender),
		BloodType: models.BloodType(f.bloodType),
		AgeRange:  ageRange,
	}, nil
}

// patientListing is one fetched page narrowed by the local criteria.
type patientListing struct {
	Fetched    int
	Filtered   []models.Patient
	Rows       []models.Patient
	Page       int
	TotalPages int
}

func fetchPatients(ctx context.Context, app *application, flags *patientQueryFlags) (*patientListing, error) {
	criteria, err := flags.criteria()
	if err != nil {
		return nil, err
	}

	filter := requests.PatientFilter(flags.where)
	result, err := app.Client.Patients.QueryPatientPage(ctx, filter, requests.Pagination(flags.page, flags.limit))
	if err != nil {
		return nil, err
	}
	// A bare list for a later page may already be that page or may be the
	// whole collection. Only the whole collection can be paged locally.
	if result.Page == 0 && flags.page > 1 && len(result.Patients) <= flags.limit {
		result, err = app.Client.Patients.QueryPatientPage(ctx, filter, nil)
		if err != nil {
			return nil, err
		}
	}
	filtered := dashboard.FilterPatients(result.Patients, criteria, app.Now())

	listing := &patientListing{
		Fetched:  len(result.Patients),
		Filtered: filtered,
	}
	if result.Page > 0 {
		listing.Rows = filtered
		listing.Page = result.Page
		listing.TotalPages = result.TotalPages
		if listing.TotalPages < 1 {
			listing.TotalPages = 1
		}
		return listing, nil
	}

	// the backend returned everything at once, page locally
	listing.TotalPages = dashboard.TotalPages(len(filtered), flags.limit)
	listing.Page = dashboard.ClampPage(1, flags.page, listing.TotalPages)
	listing.Rows = dashboard.Paginate(filtered, listing.Page, flags.limit)
	return listing, nil
}

func runPatients(ctx context.Context, app *application, args []string) error {
	flags := &patientQueryFlags{}
	fs := newFlagSet("patients")
	flags.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	listing, err := fetchPatients(ctx, app, flags)
	if err != nil {
		return err
	}

	if len(listing.Rows) == 0 {
		fmt.Fprintln(app.Stdout, "No patients found")
	} else {
		table := tablewriter.NewWriter(app.Stdout)
		table.SetHeader([]string{"MRN", "Name", "Age", "Gender", "Blood type", "Doctor"})
		table.SetBorder(false)
		table.SetAutoWrapText(false)
		for _, patient := range listing.Rows {
			table.Append([]string{
				patient.MedicalRecordNumber,
				patient.FullName(),
				formatAge(patient.DateOfBirth, app.Now()),
				string(patient.Gender),
				string(patient.BloodType),
				patient.AssignedDoctor,
			})
		}
		table.Render()
	}

	fmt.Fprintf(app.Stdout, "Showing %d of %d patients, page %d of %d\n", len(listing.Filtered), listing.Fetched, listing.Page, listing.TotalPages)
	return nil
}

func runVitals(ctx context.Context, app *application, args []string) error {
	var days int
	var seed uint64
	var seriesName string
	fs := newFlagSet("vitals")
	fs.IntVarP(&days, "days", "d", constvars.DefaultVitalDays, "number of days ending today")
	fs.StringVar(&seriesName, "series", "", "heartRate, bloodPressureSystolic, bloodPressureDiastolic or temperature")
	fs.Uint64Var(&seed, "seed", 0, "random seed, 0 picks one")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if seed == 0 {
		seed = uint64(app.Now().UnixNano())
	}
	vitals := dashboard.GenerateVitals(days, app.Now(), rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))

	table := tablewriter.NewWriter(app.Stdout)
	table.SetBorder(false)
	if seriesName != "" {
		series, err := dashboard.ParseVitalSeries(seriesName)
		if err != nil {
			return err
		}
		values, err := dashboard.SeriesValues(vitals, series)
		if err != nil {
			return err
		}
		table.SetHeader([]string{"Date", string(series)})
		for i, vital := range vitals {
			table.Append([]string{vital.Date, strconv.FormatFloat(values[i], 'f', -1, 64)})
		}
		table.Render()
		return nil
	}

	table.SetHeader([]string{"Date", "Heart rate", "Systolic", "Diastolic", "Temperature"})
	for _, vital := range vitals {
		table.Append([]string{
			vital.Date,
			strconv.Itoa(vital.HeartRate),
			strconv.Itoa(vital.BloodPressureSystolic),
			strconv.Itoa(vital.BloodPressureDiastolic),
			strconv.FormatFloat(vital.Temperature, 'f', 1, 64),
		})
	}
	table.Render()
	return nil
}

func runExport(ctx context.Context, app *application, args []string) error {
	flags := &patientQueryFlags{}
	fs := newFlagSet("export")
	flags.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	listing, err := fetchPatients(ctx, app, flags)
	if err != nil {
		return err
	}

	objectName, err := app.Exporter.ExportPatients(ctx, listing.Filtered)
	if err != nil {
		return err
	}
	fmt.Fprintf(app.Stdout, "Exported %d patients to %s/%s\n", len(listing.Filtered), app.Bootstrap.InternalConfig.Export.BucketName, objectName)
	return nil
}

func describeUser(user *models.User) string {
	if user == nil {
		return "unknown user"
	}
	if user.Name == "" {
		return user.Email
	}
	return fmt.Sprintf("%s <%s>", user.Name, user.Email)
}

func formatAge(dateOfBirth models.Date, now time.Time) string {
	if dateOfBirth.IsZero() {
		return "-"
	}
	return strconv.Itoa(dashboard.CalculateAge(dateOfBirth.Time, now))
}
