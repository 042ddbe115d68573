// Package cli provides the interactive userdash command-line client.
//
// The REPL drives the same router and view controllers as the browser
// shell. Every command ends by printing the current view, and the prompt
// shows the current route and the signed-in email.
//
// Commands
//
//	help                  show available commands
//	go <path> | open      navigate to a route (/, /home, /profile, /login, /register)
//	home | profile        shortcuts for go /home and go /profile
//	login | register      open the form and prompt for its fields
//	edit                  enter profile edit mode
//	set <field> <value>   change a draft field (fullName, username, phoneNumber)
//	save | cancel         leave edit mode, keeping or discarding the draft
//	show                  print the current view again
//	logout                drop the session
//	exit | quit           leave the program
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
