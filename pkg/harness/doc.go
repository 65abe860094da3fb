// Package harness drives a host toolkit's controls and screens the way a
// real user would, from inside a test.
//
// # Quick Start
//
// Create a driver, simulate an interaction, and assert immediately:
//
//	func TestLogin(t *testing.T) {
//	    driver := harness.NewDriver()
//
//	    // Simulate focus, typing, and blur with the full callback
//	    // sequence a real interaction produces.
//	    if err := driver.EnterText(emailField, "user@example.com"); err != nil {
//	        t.Fatal(err)
//	    }
//
//	    // Present a screen; completion runs before Present returns.
//	    driver.Present(home, settings, func() { presented = true })
//	}
//
// Every simulation call is synchronous and deterministic: control and
// node state is mutated and all hooks have fired by the time the call
// returns, so no waiting is needed for effects the driver itself owns.
//
// # Awaiting the Application Under Test
//
// State owned by the application (a scheduled screen transition, a
// deferred load) is observed with WaitUntil, the driver's only
// suspension point:
//
//	err := driver.WaitUntil("settings screen presented", func() bool {
//	    return settings.PresentingNode() != nil
//	}, time.Second)
//
// Between polls the driver drains its dispatch queue and the injected
// host scheduler, so pending main-thread work runs while the test
// blocks. Pass a FakeClock via SetClock for deterministic wait tests.
package harness
