package seeder

import "github.com/google/uuid"

var demoNamespace = uuid.MustParse("6f1c2a52-4d1e-4a53-9d0b-2f4b8f7e9a10")

// DemoUserID returns the stable id of a seeded user.
func DemoUserID(username string) uuid.UUID {
	return uuid.NewSHA1(demoNamespace, []byte("user:"+username))
}

// DemoJobID returns the stable id of a seeded job.
func DemoJobID(slug string) uuid.UUID {
	return uuid.NewSHA1(demoNamespace, []byte("job:"+slug))
}
