package databaseprovisioner

// Seeded administrator identity.
const (
	AdminUsername = "admin"
	AdminPassword = "admin123"
	AdminRole     = "ADMIN"
)

// Table names.
const (
	UsersTable      = "users"
	ForgetPassTable = "forget_pass"
)

// CreateUsersTableStatement creates the identity table. username and
// registration_no are each unique when present.
const CreateUsersTableStatement = `CREATE TABLE IF NOT EXISTS users (
    id INT NOT NULL AUTO_INCREMENT,
    username VARCHAR(50) DEFAULT NULL,
    registration_no VARCHAR(20) DEFAULT NULL,
    password VARCHAR(100) NOT NULL,
    role VARCHAR(10) NOT NULL,
    is_active TINYINT(1) NOT NULL DEFAULT 1,
    PRIMARY KEY (id),
    UNIQUE KEY uk_username (username),
    UNIQUE KEY uk_registration_no (registration_no)
)`

// CreateForgetPassTableStatement creates the unconstrained password reset staging table.
const CreateForgetPassTableStatement = `CREATE TABLE IF NOT EXISTS forget_pass (
    email VARCHAR(100) DEFAULT NULL,
    username VARCHAR(100) DEFAULT NULL,
    password VARCHAR(100) DEFAULT NULL
)`

// SeedAdminStatement inserts the default administrator. The unique username key
// turns repeated runs into no-ops.
const SeedAdminStatement = `INSERT IGNORE INTO users (username, password, role, is_active)
VALUES ('admin', 'admin123', 'ADMIN', 1)`

// VerifyAdminQuery selects every administrator; it takes the role as its only argument.
const VerifyAdminQuery = `SELECT * FROM users WHERE role = ?`

// Step is one statement of the provisioning sequence.
type Step struct {
	// Name identifies the step in logs and error messages.
	Name string
	// Activity is the progress line shown to the operator.
	Activity string
	// Statement is the SQL executed for the step.
	Statement string
}

// Steps returns the provisioning statements in execution order.
func Steps() []Step {
	return []Step{
		{
			Name:      "create " + UsersTable + " table",
			Activity:  "creating " + UsersTable + " table",
			Statement: CreateUsersTableStatement,
		},
		{
			Name:      "create " + ForgetPassTable + " table",
			Activity:  "creating " + ForgetPassTable + " table",
			Statement: CreateForgetPassTableStatement,
		},
		{
			Name:      "seed admin user",
			Activity:  "creating default admin user",
			Statement: SeedAdminStatement,
		},
	}
}
