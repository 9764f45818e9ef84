package main

// ========================= HTML Template =========================

const indexHTML = `<!DOCTYPE html>
<html>
<head>
  <title>Monster Mayhem</title>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <style>
    body { font-family: system-ui, sans-serif; background: #0a0c10; color: #f3f4f6; margin: 0; padding: 20px; }
    .container { max-width: 720px; margin: 0 auto; }
    h1 { color: #9b7ee0; text-align: center; }
    button {
      cursor: pointer; padding: 8px 14px; border-radius: 10px;
      border: 1px solid rgba(155,126,224,.45);
      background: linear-gradient(180deg,#1a2330,#0e141e);
      color: #f3f4f6; font-weight: 700;
    }
    button:hover { filter: brightness(1.1); }
    input, select { padding: 8px; border-radius: 8px; border: 1px solid #333; background: #121826; color: #f3f4f6; }
    #grid { display: grid; grid-template-columns: repeat(10, 40px); gap: 2px; margin: 16px auto; width: max-content; }
    .cell { width: 40px; height: 40px; background: #1a2330; border-radius: 4px; display: flex;
            align-items: center; justify-content: center; font-size: 22px; cursor: pointer; }
    .cell.mine { outline: 2px solid #9b7ee0; }
    .cell.selected { outline: 2px solid #e8d6a6; }
    #message { text-align: center; min-height: 1.4em; color: #e8d6a6; }
    .bar { display: flex; gap: 8px; justify-content: center; margin: 10px 0; flex-wrap: wrap; }
    #statsline { text-align: center; color: #8b93a7; font-size: 14px; }
    .version { text-align: center; color: #444; font-size: 11px; margin-top: 24px; }
  </style>
</head>
<body>
  <div class="container">
    <h1>Monster Mayhem</h1>
    <div class="bar">
      <input type="text" id="game-id" placeholder="Game ID">
      <button id="join-game">Join Game</button>
      <select id="monster-type">
        <option value="vampire">Vampire</option>
        <option value="werewolf">Werewolf</option>
        <option value="ghost">Ghost</option>
      </select>
      <button id="end-turn">End Turn</button>
    </div>
    <div id="message">Connecting...</div>
    <div id="grid"></div>
    <div id="statsline">Games played: <span id="total-games">0</span>
      | Wins: <span id="wins">0</span> | Losses: <span id="losses">0</span></div>
    <div class="version">build {{BUILD_VERSION}}</div>
  </div>

  <script>
    const icons = { vampire: '🧛', werewolf: '🐺', ghost: '👻' };
    let ws = null;
    let playerId = null;
    let gameId = null;
    let selectedMonsterId = null;
    let gameState = { monsters: {}, currentTurn: null };
    let players = [];

    const message = document.getElementById('message');
    const grid = document.getElementById('grid');

    function connect() {
      const protocol = location.protocol === 'https:' ? 'wss:' : 'ws:';
      ws = new WebSocket(protocol + '//' + location.host + '/ws');
      ws.onopen = () => { message.textContent = 'Connected to server!'; };
      ws.onclose = () => { message.textContent = 'Server lost! Reconnecting...'; setTimeout(connect, 1000); };
      ws.onmessage = (event) => {
        const msg = JSON.parse(event.data);
        switch (msg.type) {
          case 'you':
            playerId = msg.data.id;
            break;
          case 'gameJoined':
            gameId = msg.data.gameId;
            gameState = msg.data.gameState;
            players = msg.data.players;
            message.textContent = 'Joined game ' + gameId;
            render();
            break;
          case 'updateGameState':
            gameState = msg.data.gameState;
            players = msg.data.players;
            render();
            break;
          case 'updateStats': {
            document.getElementById('total-games').textContent = msg.data.totalGames;
            const mine = msg.data.stats && (msg.data.stats.wins !== undefined ? msg.data.stats : msg.data.stats[playerId]);
            if (mine) {
              document.getElementById('wins').textContent = mine.wins;
              document.getElementById('losses').textContent = mine.losses;
            }
            break;
          }
          case 'error':
            message.textContent = msg.data;
            break;
          case 'gameEnded':
            message.textContent = msg.data.winner === playerId ? 'You win!'
              : (msg.data.winner ? 'You lose!' : 'Mutual elimination!');
            gameId = null;
            gameState = { monsters: {}, currentTurn: null };
            players = [];
            render();
            break;
        }
      };
    }

    function send(type, data) { ws.send(JSON.stringify({ type: type, data: data })); }

    function myTurn() { return gameState.currentTurn === playerId; }

    function handleCellClick(row, col) {
      if (!gameId) { message.textContent = 'Join a game first!'; return; }
      if (!myTurn()) { message.textContent = 'Not your turn!'; return; }
      if (selectedMonsterId) {
        send('playerAction', { gameId: gameId, action: { type: 'moveMonster', monsterId: selectedMonsterId, position: { row: row, col: col } } });
        selectedMonsterId = null;
        render();
        return;
      }
      const occupant = Object.keys(gameState.monsters).find(id =>
        gameState.monsters[id].position.row === row && gameState.monsters[id].position.col === col);
      if (occupant && gameState.monsters[occupant].playerId === playerId) {
        selectedMonsterId = occupant;
        render();
        return;
      }
      send('playerAction', { gameId: gameId, action: { type: 'placeMonster',
        monsterType: document.getElementById('monster-type').value, position: { row: row, col: col } } });
    }

    function render() {
      grid.innerHTML = '';
      for (let row = 0; row < 10; row++) {
        for (let col = 0; col < 10; col++) {
          const cell = document.createElement('div');
          cell.classList.add('cell');
          const id = Object.keys(gameState.monsters).find(k =>
            gameState.monsters[k].position.row === row && gameState.monsters[k].position.col === col);
          if (id) {
            const m = gameState.monsters[id];
            cell.textContent = icons[m.type] || '?';
            if (m.playerId === playerId) cell.classList.add('mine');
            if (id === selectedMonsterId) cell.classList.add('selected');
          }
          cell.addEventListener('click', () => handleCellClick(row, col));
          grid.appendChild(cell);
        }
      }
      if (gameId && players.length) {
        message.textContent = myTurn() ? 'Your turn!' : 'Waiting for opponent...';
      }
    }

    document.getElementById('join-game').addEventListener('click', () => {
      const id = document.getElementById('game-id').value.trim();
      send('joinGame', id);
    });
    document.getElementById('end-turn').addEventListener('click', () => {
      if (gameId) send('playerAction', { gameId: gameId, action: { type: 'endTurn' } });
    });

    render();
    connect();
  </script>
</body>
</html>`
