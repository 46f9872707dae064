package characters

const bubblesArt = `
       .----.
      / o  o \
     |  .__.  |
     |  |  |  |
      \ '--' /
       '----'
       /|||||\
`

const bubblesHappy = `
       .----.
      / ^  ^ \
     |  .__.  |
     |  |><|  |
      \ '--' /
       '----'
       /|||||\
`

const bubblesShy = `
       .----.
      / -  - \
     |  .__.  |
     |  |..|  |
      \ '--' /
       '----'
       /|||||\
`

const marinaArt = `
            _____
    ,------'     '-----.
   /  o               /
  |    ___     ___   <
   \      '---'    \  \
    '-------.------'   |
             \________/
`

const marinaHappy = `
            _____
    ,------'     '-----.
   /  ^               /
  |    ___     ___   <
   \      '---'    \  \
    '-------.------'   |
             \________/
`

const marinaAngry = `
            _____
    ,------'     '-----.
   / >/               /
  |    ___     ___   <
   \      '---'    \  \
    '-------.------'   |
             \________/
`

const gillArt = `
      .---.
     / o o \
    |   ~   |
     \ ___ /
      '---'
`

const gillPuffed = `
    .--------.
   /  O    O  \
  |            |
  |     ~~     |
  |            |
   \  .----.  /
    '--------'
`

const gillShy = `
      .---.
     / - - \
    |   ~   |
     \ ___ /
      '---'
`

const coralCafe = `
  .=====================.
  |   CORAL CAFE        |
  |  ___          ___   |
  | |   |  {~~}  |   |  |
  | | c |  {~~}  | c |  |
  | |___|________|___|  |
  |   []    []    []    |
  '====================='
`

const moonlitReef = `
        *  .  *     *  .
     .    *    .  *
   *   .      *     .  *
  ~~~~~~~~~~~~~~~~~~~~~~~~~~~~
  ~~ /\  ~~  /\ ~~  /\  ~~~~~
  ~ /  \ ~~ /  \ ~ /  \ ~~~~~
  ~/    \~~/    \~/    \~~~~~~
`

const sunkenShip = `
  ~~~~~~~~~~~~~~~~~~~~~~~~
  ~~  _______________  ~~~
  ~~ /    |     |    \ ~~~
  ~ |     |  X  |     | ~~
  ~ |_____|_____|_____| ~~
  ~~~~~~~~~~~~~~~~~~~~~~~~
  ~~~ ~~ ~~ ~~ ~~ ~~ ~~~~~
`
