/*
Package pretty describes programs, cursors and runtime state as styled text
for terminal display.

Every function in this package is a pure description: it inspects its
argument and returns a Text, a list of styled segments. Texts may be
rendered with terminal colors (String) or without (Plain). Nothing here feeds
back into editing or evaluation.

Styling uses pterm (https://github.com/pterm/pterm).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pretty
