// Package mysqlconnector opens MySQL sessions for the database provisioner.
//
// A session owns one pooled connection and one transaction that is started
// when the session is opened, so statements stay invisible to other clients
// until Commit.
package mysqlconnector
