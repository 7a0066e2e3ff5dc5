// Package sqlite implements the embedded store for mealweek: six tables
// holding credentials, weeks, customers, menu items, orders, and order
// lines. Table and column names match the databases written by the
// previous version of the app, so existing data files keep loading.
package sqlite

// Schema DDL. Statements are idempotent (IF NOT EXISTS) and listed in
// dependency order: orders reference customers and weeks, order lines
// reference orders and menu items.
const (
	createUsuarios = `CREATE TABLE IF NOT EXISTS usuarios (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL
);`

	createSemanas = `CREATE TABLE IF NOT EXISTS semanas (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    nome_semana TEXT NOT NULL UNIQUE,
    data_inicio DATE,
    data_fim DATE
);`

	createClientes = `CREATE TABLE IF NOT EXISTS clientes (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    nome TEXT NOT NULL,
    endereco TEXT,
    complemento TEXT,
    telefone TEXT UNIQUE
);`

	createMarmitas = `CREATE TABLE IF NOT EXISTS marmitas (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    nome TEXT NOT NULL UNIQUE,
    descricao TEXT,
    preco REAL,
    categoria TEXT,
    disponivel_semana BOOLEAN DEFAULT TRUE,
    imagem_path TEXT
);`

	createPedidos = `CREATE TABLE IF NOT EXISTS pedidos (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    cliente_id INTEGER,
    semana_id INTEGER,
    data_hora TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    valor_total REAL,
    forma_pagamento TEXT,
    status_pagamento TEXT DEFAULT 'Pendente',
    status_entrega TEXT DEFAULT 'Pendente',
    FOREIGN KEY (cliente_id) REFERENCES clientes (id) ON DELETE SET NULL,
    FOREIGN KEY (semana_id) REFERENCES semanas (id) ON DELETE SET NULL
);`

	createItensPedido = `CREATE TABLE IF NOT EXISTS itens_pedido (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    pedido_id INTEGER,
    marmita_id INTEGER,
    quantidade INTEGER,
    preco_unitario REAL,
    FOREIGN KEY (pedido_id) REFERENCES pedidos (id) ON DELETE CASCADE,
    FOREIGN KEY (marmita_id) REFERENCES marmitas (id) ON DELETE SET NULL
);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createUsuarios,
	createSemanas,
	createClientes,
	createMarmitas,
	createPedidos,
	createItensPedido,
}
