package cli

const Logo = `                                                  _
 _ __   __ _ ___ ___  __ _ _   _  __ _ _ __ __| |
| '_ \ / _` + "`" + ` / __/ __|/ _` + "`" + ` | | | |/ _` + "`" + ` | '__/ _` + "`" + ` |
| |_) | (_| \__ \__ \ (_| | |_| | (_| | | | (_| |
| .__/ \__,_|___/___/\__, |\__,_|\__,_|_|  \__,_|
|_|                  |___/
`
