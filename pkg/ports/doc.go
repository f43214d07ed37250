/*
Package ports defines the driven ports (interfaces) between the Filler core and its hosts.

These interfaces decouple the game from the devices it is played on, allowing the
same engine to be driven by a keyboard, a JSON stream, switches or a test script.

# Key Interfaces

  - ChoiceSource: Produces the next committed color choice.
  - Presenter: Renders a board and score snapshot.
  - StatelessGame: The engine surface a host loop drives.
*/
package ports
