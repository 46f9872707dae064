/*
Package session serializes read-modify-write access to saved profiles.

A date started from the command line loads the profile, plays for minutes and then commits the
result. Meanwhile the full-screen game or a second terminal may have saved the same profile.
Manager.Update reloads the latest save under a lock before applying a change, so neither write
is lost. A ports.Locker extends the lock across processes sharing a Redis save.
*/
package session
